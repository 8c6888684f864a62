// Package growth projects the value of an investment made of an initial lump
// sum and a recurring contribution, compounded at a constant annual rate.
//
// The core functionalities are plain functions with no state:
//   - Project and ProjectPeriods: compound the investment period by period
//     and return every period end value.
//   - Volatility: the annualized standard deviation of the period over
//     period returns of a series.
//   - Scenarios: the same projection at the rate minus 3%, the rate, and the
//     rate plus 3%, for comparison.
//
// Plan and Report sit on top of them: a Plan is the explicit input of a
// calculation, validated at the boundary, and a Report runs every
// calculation for a Plan and presents the results in money, with a goal
// status and a period breakdown.
//
// This package serves as the foundational logic for the `grow` command-line
// tool.
package growth
