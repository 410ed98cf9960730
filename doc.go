// Package arith implements a calculator for arithmetic expressions.
//
// Expressions are made of decimal numbers, the binary operators + - * / ^,
// the unary signs + and -, and parentheses. The usual precedence applies,
// and "^" is right-associative, so "2^3^2" is 512. Unary signs bind tighter
// than any binary operator, so "-2^2" is 4.
//
// Evaluation happens while parsing; there is no intermediate syntax tree.
// Results are float64, so "2^0.5" is an approximation and "(-8)^(1/3)" is
// NaN rather than an error.
//
package arith
