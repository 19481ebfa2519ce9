package main

import (
	"fmt"
	"log"

	"github.com/sco3/records-and-validation/calc"
	"github.com/sco3/records-and-validation/dynamic"
	"github.com/sco3/records-and-validation/models"
)

func main() {
	fmt.Println("=== Typed and Dynamic User Records Demo ===")

	// Demonstrate the arithmetic helpers
	demonstrateFunctions()

	// Demonstrate the stateful calculator
	demonstrateCalculator()

	// Demonstrate the typed user record
	demonstrateTypedUser()

	// Demonstrate the dynamic map-backed record
	demonstrateDynamicUser()

	fmt.Println("\n=== Demo Complete ===")
}

func demonstrateFunctions() {
	fmt.Println("--- Functions Demonstration ---")

	fmt.Printf("add(5, 3) = %d\n", calc.Add(5, 3))
	fmt.Printf("multiply(4, 7) = %d\n", calc.Multiply(4, 7))
	fmt.Printf("greet(\"Go Developer\") = %s\n", calc.Greet("Go Developer"))
	fmt.Println()
}

func demonstrateCalculator() {
	fmt.Println("--- Calculator Demonstration ---")

	c := calc.NewCalculator(10.0)
	fmt.Printf("Initial calculator: %v\n", c)
	fmt.Printf("After Add(5.0): %v\n", c.Add(5.0))
	fmt.Printf("After Multiply(2.0): %v\n", c.Multiply(2.0))
	fmt.Printf("After Reset(): %v\n", c.Reset())
	fmt.Println()
}

func demonstrateTypedUser() {
	fmt.Println("--- Typed User Demonstration ---")

	user := models.NewUser(1, "Alice Johnson", "alice@example.com", 30, true)
	fmt.Printf("User: %v\n", user)
	fmt.Printf("User ID: %d\n", user.ID)
	fmt.Printf("User name: %s\n", user.Name)
	fmt.Printf("User email: %s\n", user.Email)

	jsonStr, err := user.JSON()
	if err != nil {
		log.Printf("Error encoding user: %v", err)
		return
	}
	fmt.Printf("JSON: %s\n", jsonStr)

	pretty, err := user.JSONPretty()
	if err != nil {
		log.Printf("Error encoding user: %v", err)
		return
	}
	fmt.Printf("Pretty JSON:\n%s\n", pretty)

	fmt.Printf("Dict: %v\n", user.Dict())

	// Decode the compact form back into a record
	decoded, err := models.UserFromJSON(jsonStr)
	if err != nil {
		log.Printf("Error decoding user: %v", err)
		return
	}
	fmt.Printf("✓ Round trip: %v\n", decoded)

	// Copy with a subset of fields replaced
	newName := "Alice Smith"
	newAge := 31
	copied := user.Copy(models.Overrides{Name: &newName, Age: &newAge})
	fmt.Printf("✓ Modified copy: %v\n", copied)
	fmt.Printf("✓ Original unchanged: %v\n", user)

	// Malformed input is rejected without producing a partial record
	if _, err := models.UserFromJSON(`{"id":"1"}`); err != nil {
		fmt.Printf("✗ Rejected bad input: %v\n", err)
	}
	fmt.Println()
}

func demonstrateDynamicUser() {
	fmt.Println("--- Dynamic User Demonstration ---")

	user, err := dynamic.FromMap(map[string]any{
		"id":     2,
		"name":   "Bob Wilson",
		"email":  "bob@example.com",
		"age":    25,
		"active": true,
	})
	if err != nil {
		log.Printf("Error building user: %v", err)
		return
	}
	fmt.Printf("User: %v\n", user)

	age, err := user.Age()
	if err != nil {
		log.Printf("Error reading age: %v", err)
		return
	}
	fmt.Printf("Age via keyed access: %d\n", age)

	jsonStr, err := user.JSON()
	if err != nil {
		log.Printf("Error encoding user: %v", err)
		return
	}
	fmt.Printf("JSON: %s\n", jsonStr)

	decoded, err := dynamic.FromJSON(jsonStr)
	if err != nil {
		log.Printf("Error decoding user: %v", err)
		return
	}
	fmt.Printf("✓ Round trip: %v\n", decoded)

	// The typed side accepts the dynamic encoding
	crossed, err := models.UserFromJSON(jsonStr)
	if err != nil {
		log.Printf("Error crossing representations: %v", err)
		return
	}
	fmt.Printf("✓ Decoded by the typed side: %v\n", crossed)

	// Validation runs at construction, not at read time
	if _, err := dynamic.FromMap(map[string]any{"id": 3, "name": "Eve"}); err != nil {
		fmt.Printf("✗ Rejected incomplete input: %v\n", err)
	}
	fmt.Println()
}
