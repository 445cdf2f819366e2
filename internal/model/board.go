package model

// Filter selects which stored tasks are visible. It is either ByDate or
// BySubject; the two are never combined.
type Filter interface {
	Keep(Task) bool
	Label() string
	isFilter()
}

// ByDate keeps tasks filed under Date, ignoring subject.
type ByDate struct {
	Date string
}

func (f ByDate) Keep(t Task) bool { return t.Date == f.Date }
func (f ByDate) Label() string    { return DateLabel(f.Date) }
func (ByDate) isFilter()          {}

// BySubject keeps tasks tagged with Name, ignoring date.
type BySubject struct {
	Name string
}

func (f BySubject) Keep(t Task) bool { return t.Subject != nil && *t.Subject == f.Name }
func (f BySubject) Label() string    { return "subject: " + f.Name }
func (BySubject) isFilter()          {}

type Card struct {
	ID        string
	Title     string
	Desc      string
	Date      string
	DateLabel string
	Status    Status
	Subject   string
}

type Column struct {
	Status Status
	Title  string
	Cards  []Card
}

func (c Column) Count() int {
	return len(c.Cards)
}

// Board is the view model of the three status columns.
type Board struct {
	Filter  Filter
	Columns []Column
}

// BuildBoard filters tasks and partitions them by status. Cards keep the
// stored order within a column.
func BuildBoard(tasks []Task, filter Filter) Board {
	cols := make([]Column, len(Statuses))
	index := make(map[Status]int, len(Statuses))
	for i, s := range Statuses {
		cols[i] = Column{Status: s, Title: s.Label(), Cards: []Card{}}
		index[s] = i
	}
	for _, t := range tasks {
		if filter != nil && !filter.Keep(t) {
			continue
		}
		i := index[t.Status.Column()]
		cols[i].Cards = append(cols[i].Cards, Card{
			ID:        t.ID,
			Title:     t.Title,
			Desc:      t.Desc,
			Date:      t.Date,
			DateLabel: "📅 " + t.Date,
			Status:    t.Status.Column(),
			Subject:   t.SubjectName(),
		})
	}
	return Board{Filter: filter, Columns: cols}
}

func (b Board) Total() int {
	n := 0
	for _, c := range b.Columns {
		n += c.Count()
	}
	return n
}

// Column returns the column for status, or false if the board has none.
func (b Board) Column(status Status) (Column, bool) {
	for _, c := range b.Columns {
		if c.Status == status {
			return c, true
		}
	}
	return Column{}, false
}

// Find locates a visible card by id.
func (b Board) Find(id string) (Card, bool) {
	for _, c := range b.Columns {
		for _, card := range c.Cards {
			if card.ID == id {
				return card, true
			}
		}
	}
	return Card{}, false
}
