// Package symexpr implements symbolic expressions with exact differentiation.
//
// Expressions are parsed from ordinary infix notation, like "x * sin(x)" or
// "2^x^2 / (1 + y)". Precedence is the usual: brackets, then function calls,
// then right-associative ^, then * and /, then + and -. A leading - negates
// the operand immediately following it. The recognized functions are sin, cos,
// ln, and exp.
//
// An Expr can be evaluated for any assignment of its variables, differentiated
// with respect to a variable, have variables replaced by other expressions,
// and be printed back to text that parses to the same expression. Expressions
// are generic over their scalar type; Real provides arbitrary-precision real
// arithmetic and Complex provides complex128 arithmetic.
//
// Derivatives are not simplified. The derivative of x^2 is
// ((x ^ 2) * ((0 * ln(x)) + (2 * (1 / x)))), which is correct wherever x is
// positive.
package symexpr
