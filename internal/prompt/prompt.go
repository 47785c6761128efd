package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bikeshare-explorer/internal/common/logger"
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

const (
	cityQuestion  = "Select a city: Chicago, New York City, or Washington"
	monthQuestion = "Which month? All, January, February, March, April, May, or June?"
	dayQuestion   = "Which day? All, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, or Sunday?"
)

// Prompter asks the operator questions on out and reads answers line by line.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	logger  logger.Logger
}

func New(in io.Reader, out io.Writer, logger logger.Logger) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Ask prints the question and returns the next trimmed line. io.EOF is
// returned once input is exhausted.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Confirm asks a yes/no question. Only "yes", in any case, counts as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

// askUntilValid repeats the question until validate accepts the answer.
// Invalid input is never fatal.
func (p *Prompter) askUntilValid(question string, validate func(string) error) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		err = validate(answer)
		if err == nil {
			return answer, nil
		}
		if !errors.Is(err, models.ErrInvalidFilterInput) {
			return "", err
		}
		p.logger.Debug("Invalid filter input, asking again", "answer", answer, "error", err)
	}
}

// Filters asks for city, month and day and builds the FilterSpec.
func (p *Prompter) Filters() (models.FilterSpec, error) {
	city, err := p.askUntilValid(cityQuestion, func(s string) error {
		_, err := models.ParseCity(s)
		return err
	})
	if err != nil {
		return models.FilterSpec{}, err
	}
	month, err := p.askUntilValid(monthQuestion, func(s string) error {
		_, err := models.ParseMonth(s)
		return err
	})
	if err != nil {
		return models.FilterSpec{}, err
	}
	day, err := p.askUntilValid(dayQuestion, func(s string) error {
		_, err := models.ParseDay(s)
		return err
	})
	if err != nil {
		return models.FilterSpec{}, err
	}

	return models.NewFilterSpec(city, month, day)
}
