// Package calc provides basic arithmetic operations and a stateful
// calculator.
package calc

import "fmt"

// Add returns the sum of a and b
func Add(a, b int) int {
	return a + b
}

// Multiply returns the product of a and b
func Multiply(a, b int) int {
	return a * b
}

// Greet returns a greeting for the given name
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// Calculator accumulates a running value across operations
type Calculator struct {
	value float64
}

// NewCalculator creates a calculator starting at the given value
func NewCalculator(initial float64) *Calculator {
	return &Calculator{value: initial}
}

// Add adds x to the running value and returns the new value
func (c *Calculator) Add(x float64) float64 {
	c.value += x
	return c.value
}

// Multiply multiplies the running value by x and returns the new value
func (c *Calculator) Multiply(x float64) float64 {
	c.value *= x
	return c.value
}

// Reset sets the running value back to zero and returns it
func (c *Calculator) Reset() float64 {
	c.value = 0
	return c.value
}

// Value returns the current running value
func (c *Calculator) Value() float64 {
	return c.value
}

// String implements fmt.Stringer
func (c *Calculator) String() string {
	return fmt.Sprintf("Calculator(value=%v)", c.value)
}
