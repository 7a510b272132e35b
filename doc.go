// Package fincast provides the projection and planning engine behind the
// `fcast` command-line tool. It answers the questions a saver actually asks:
// what will this be worth, how much must I put aside, and when do I get
// there.
//
// The core functionalities include:
//   - Exact Arithmetic: All money and rate computations run on arbitrary
//     precision decimals; binary floating point never touches a result.
//   - Rate Conversions: Translating between annual equivalent, effective
//     monthly, nominal and continuous rate conventions.
//   - Projections: Compound growth with optional monthly contributions,
//     multi-horizon batches, scenario sets and CAGR annotations.
//   - Searches: Bounded bisections answering the inverse questions, the
//     required monthly contribution and the years to a target, plus the
//     financial independence timeline built on them.
//   - Goals: Named savings targets persisted as human-readable JSONL,
//     progress reports, and jsonpath-driven import of third-party exports.
//
// Projections are pure functions of their inputs, so the Planner can
// memoize them through an optional shared cache.
package fincast
