// Package fib generates the Fibonacci sequence and the derived quantities
// the dashboard panels display: consecutive-term ratios, their convergence
// toward the golden ratio, and per-term statistics.
package fib
