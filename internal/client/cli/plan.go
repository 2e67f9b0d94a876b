package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/tripplanner/internal/client/gateway"
	"github.com/dmitrijs2005/tripplanner/internal/itinerary"
)

// Plan asks for a destination and trip length and prints the itinerary one
// day at a time.
func (a *App) Plan(ctx context.Context) error {
	destination, err := getSimpleText(a.reader, "Destination", a.out)
	if err != nil {
		return err
	}
	days, err := getSimpleText(a.reader, "Number of days", a.out)
	if err != nil {
		return err
	}

	text, err := a.gateway.GenerateItinerary(ctx, destination, days)
	if errors.Is(err, gateway.ErrMissingField) {
		a.println("Destination and number of days are required.")
		return nil
	}
	if err != nil {
		return err
	}

	a.lastDestination = destination
	a.lastPlan = itinerary.SplitDays(text)

	a.println()
	a.println("Your travel plan:")
	for _, b := range a.lastPlan {
		a.printDay(b)
	}
	return nil
}

// Day prints one day of the last plan.
func (a *App) Day(_ context.Context, arg string) error {
	if len(a.lastPlan) == 0 {
		a.println("No plan yet, run 'plan' first.")
		return nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		a.println("Usage: day <n>")
		return nil
	}
	for _, b := range a.lastPlan {
		if b.Number == n {
			a.printDay(b)
			return nil
		}
	}
	a.println(fmt.Sprintf("The plan has no day %d.", n))
	return nil
}

func (a *App) printDay(b itinerary.DayBlock) {
	a.println()
	a.println(fmt.Sprintf("== Day %d, %s ==", b.Number, itinerary.GuessLocation(b.Text, a.lastDestination)))
	a.println(b.Text)
}
