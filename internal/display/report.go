package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

var separator = strings.Repeat("-", 40)

// Printer writes reports in the fixed section order: time, station,
// duration, user.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Greeting() {
	fmt.Fprintln(p.out, "Hello! Let's explore some US bikeshare data!")
}

func (p *Printer) Separator() {
	fmt.Fprintln(p.out, separator)
}

func (p *Printer) Report(r *models.StatsReport) {
	p.section("Calculating The Most Frequent Times of Travel...", r.Timings.Time, func() {
		fmt.Fprintln(p.out, "Most Common Month:", r.Time.MostCommonMonth)
		fmt.Fprintln(p.out, "Most Common Day of the Week:", r.Time.MostCommonWeekday)
		fmt.Fprintln(p.out, "Most Common Start Hour:", r.Time.MostCommonHour)
	})

	p.section("Calculating The Most Popular Stations and Trip...", r.Timings.Station, func() {
		fmt.Fprintln(p.out, "Most Common Start Station:", r.Station.MostCommonStartStation)
		fmt.Fprintln(p.out, "Most Common End Station:", r.Station.MostCommonEndStation)
		fmt.Fprintln(p.out, "Most Common Trip:", r.Station.MostCommonTrip)
	})

	p.section("Calculating Trip Duration...", r.Timings.Duration, func() {
		fmt.Fprintln(p.out, "Total Travel Time:", FormatElapsed(r.Duration.Total))
		if r.Duration.HasMean {
			fmt.Fprintln(p.out, "Mean Travel Time:", FormatElapsed(r.Duration.Mean))
		} else {
			fmt.Fprintln(p.out, "Mean Travel Time: not available")
		}
	})

	p.section("Calculating User Stats...", r.Timings.User, func() {
		fmt.Fprintln(p.out, "Number of Subscribers:", r.User.Subscribers)
		fmt.Fprintln(p.out, "Number of Customers:", r.User.Customers)
		fmt.Fprintln(p.out)

		if r.User.Genders != nil {
			for _, g := range r.User.Genders {
				fmt.Fprintln(p.out, "Number of", g.Name, "Users:", g.Count)
			}
		} else {
			fmt.Fprintln(p.out, "No Gender Info Available For This Selection")
		}
		fmt.Fprintln(p.out)

		if b := r.User.BirthYears; b != nil {
			fmt.Fprintln(p.out, "Earliest Year of Birth:", b.Earliest)
			fmt.Fprintln(p.out, "Most Recent Year of Birth:", b.MostRecent)
			fmt.Fprintln(p.out, "Most Common Year of Birth:", b.Median)
		} else {
			fmt.Fprintln(p.out, "Year of Birth Not Available for this Selection")
		}
	})
}

// Error reports a failed run to the operator.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.out, "\nUnable to complete the report: %v\n", err)
	p.Separator()
}

func (p *Printer) section(title string, took time.Duration, body func()) {
	fmt.Fprintf(p.out, "\n%s\n\n", title)
	body()
	fmt.Fprintf(p.out, "\nThis took %v seconds.\n", took.Seconds())
	p.Separator()
}
