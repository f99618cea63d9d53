// Package finpredictor provides the types and calculations behind a personal
// finance dashboard: portfolio tracking, goal planning and AI insights.
//
// The core functionalities include:
//   - Projection: the month-by-month, inflation-adjusted value of a
//     Systematic Investment Plan (SIP), see Project.
//   - Goal planning: the monthly contribution required to reach a target
//     amount by a target date, see RequiredSIP and NewGoal.
//   - Portfolio valuation: exact cost, value and allocation of the assets
//     held by a user, using decimal arithmetic.
//
// Calculations are pure functions; they hold no state and are safe for
// concurrent use. Persistence, transport and AI live in the store, server,
// client and agent packages.
package finpredictor
