package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

const rowTimeLayout = "2006-01-02 15:04:05"

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Pager shows the filtered trips a page at a time, forward only.
type Pager struct {
	out      io.Writer
	confirm  Confirmer
	pageSize int
}

func NewPager(out io.Writer, confirm Confirmer, pageSize int) *Pager {
	return &Pager{out: out, confirm: confirm, pageSize: pageSize}
}

// Run offers the first page and keeps going until the operator declines or
// the rows run out.
func (p *Pager) Run(ds *models.TripDataset) error {
	show, err := p.confirm.Confirm(fmt.Sprintf("Display %d Lines of Raw Data? (Yes or No)", p.pageSize))
	if err != nil || !show {
		return err
	}

	for offset := 0; ; offset += p.pageSize {
		page := ds.Page(offset, p.pageSize)
		if len(page) == 0 {
			fmt.Fprintln(p.out, "No more trips to display.")
			return nil
		}
		p.writePage(ds.Schema, offset, page)

		if offset+len(page) >= ds.Len() {
			return nil
		}
		more, err := p.confirm.Confirm(fmt.Sprintf("Display Next %d Lines of Raw Data? (Yes or No)", p.pageSize))
		if err != nil || !more {
			return err
		}
	}
}

func (p *Pager) writePage(schema models.Schema, offset int, page []models.TripRecord) {
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)

	columns := []string{"", models.ColumnStartTime, models.ColumnEndTime, models.ColumnStartStation, models.ColumnEndStation, models.ColumnUserType}
	if schema.HasGender {
		columns = append(columns, models.ColumnGender)
	}
	if schema.HasBirthYear {
		columns = append(columns, models.ColumnBirthYear)
	}
	fmt.Fprintln(w, strings.Join(columns, "\t"))

	for i, r := range page {
		fields := []string{
			strconv.Itoa(offset + i),
			r.StartTime.Format(rowTimeLayout),
			r.EndTime.Format(rowTimeLayout),
			r.StartStation,
			r.EndStation,
			r.UserType,
		}
		if schema.HasGender {
			fields = append(fields, r.Gender)
		}
		if schema.HasBirthYear {
			year := ""
			if r.HasBirthYear {
				year = strconv.Itoa(r.BirthYear)
			}
			fields = append(fields, year)
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))
	}
	w.Flush()
}
