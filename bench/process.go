package bench

import (
	"fmt"
	"time"

	"github.com/sco3/records-and-validation/dynamic"
	"github.com/sco3/records-and-validation/models"
)

// Result summarizes one aggregation pass over a user population
type Result struct {
	TotalAge      int64
	ActiveCount   int64
	Errors        int64
	ElapsedMicros float64
}

// SumActiveTyped totals the ages of active users through direct field
// access. Field reads cannot fail, so Errors is always zero.
func SumActiveTyped(users []models.User) Result {
	start := time.Now()

	var totalAge, activeCount int64
	for _, u := range users {
		if u.Active {
			totalAge += int64(u.Age)
			activeCount++
		}
	}

	return Result{
		TotalAge:      totalAge,
		ActiveCount:   activeCount,
		ElapsedMicros: float64(time.Since(start).Nanoseconds()) / 1e3,
	}
}

// SumActiveDynamic totals the ages of active users through keyed lookups
// and type assertions. Users missing either field, or carrying the wrong
// type, are counted in Errors and skipped.
func SumActiveDynamic(users []dynamic.User) Result {
	start := time.Now()

	var totalAge, activeCount, errCount int64
	for _, u := range users {
		active, err := u.Active()
		if err != nil {
			errCount++
			continue
		}
		if !active {
			continue
		}

		age, err := u.Age()
		if err != nil {
			errCount++
			continue
		}
		totalAge += int64(age)
		activeCount++
	}

	return Result{
		TotalAge:      totalAge,
		ActiveCount:   activeCount,
		Errors:        errCount,
		ElapsedMicros: float64(time.Since(start).Nanoseconds()) / 1e3,
	}
}

// GenerateTypedUsers builds a deterministic population of n users; every
// third user is inactive
func GenerateTypedUsers(n int) []models.User {
	users := make([]models.User, n)
	for i := range users {
		users[i] = models.NewUser(
			i+1,
			fmt.Sprintf("User %d", i+1),
			fmt.Sprintf("user%d@example.com", i+1),
			20+i%50,
			i%3 != 0,
		)
	}
	return users
}

// GenerateDynamicUsers builds the same population as GenerateTypedUsers in
// the dynamic representation
func GenerateDynamicUsers(n int) []dynamic.User {
	users := make([]dynamic.User, n)
	for i := range users {
		users[i] = dynamic.Wrap(map[string]any{
			"id":     i + 1,
			"name":   fmt.Sprintf("User %d", i+1),
			"email":  fmt.Sprintf("user%d@example.com", i+1),
			"age":    20 + i%50,
			"active": i%3 != 0,
		})
	}
	return users
}
