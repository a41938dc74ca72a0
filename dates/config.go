package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layouts tried by [DefaultConfig], in order.
const (
	ISODateLayout       = "2006-01-02"
	ShortDateLayout     = "02/01/2006"
	ISODateTimeLayout   = "2006-01-02 15:04:05"
	ShortDateTimeLayout = "02/01/2006 15:04:05"
)

// Config holds the settings of a [Parser].
type Config struct {
	// Location is used to interpret parsed values and the current time.
	// Defaults to time.Local if nil.
	Location *time.Location

	// DateLayouts are tried in order by ParseDate when no layout is given.
	DateLayouts []string

	// DateTimeLayouts are tried in order by ParseDateTime when no layout is
	// given.
	DateTimeLayouts []string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns a [Config] accepting ISO and day/month/year input
// in the local time zone.
func DefaultConfig() Config {
	return Config{
		Location:        time.Local,
		DateLayouts:     []string{ISODateLayout, ShortDateLayout},
		DateTimeLayouts: []string{ISODateTimeLayout, ShortDateTimeLayout},
		Now:             time.Now,
	}
}

// Parser turns strings into [Date] and [DateTime] values.
type Parser struct {
	cfg Config
}

// NewParser creates a Parser. Zero fields of cfg fall back to the values of
// [DefaultConfig].
func NewParser(cfg Config) *Parser {
	def := DefaultConfig()
	if cfg.Location == nil {
		cfg.Location = def.Location
	}
	if len(cfg.DateLayouts) == 0 {
		cfg.DateLayouts = def.DateLayouts
	}
	if len(cfg.DateTimeLayouts) == 0 {
		cfg.DateTimeLayouts = def.DateTimeLayouts
	}
	if cfg.Now == nil {
		cfg.Now = def.Now
	}
	return &Parser{cfg: cfg}
}

var defaultParser = NewParser(DefaultConfig())

// Today returns the current day.
func (p *Parser) Today() Date { return NewDate(p.cfg.Now().In(p.cfg.Location)) }

// Now returns the current instant truncated to seconds.
func (p *Parser) Now() DateTime { return NewDateTime(p.cfg.Now().In(p.cfg.Location)) }

// ParseDate parses s using layouts, or the configured date layouts if none
// are given. The first layout that matches wins.
func (p *Parser) ParseDate(s string, layouts ...string) (Date, error) {
	if len(layouts) == 0 {
		layouts = p.cfg.DateLayouts
	}
	t, err := p.parse(s, layouts)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

// ParseDateTime parses s using layouts, or the configured date-time layouts
// if none are given.
func (p *Parser) ParseDateTime(s string, layouts ...string) (DateTime, error) {
	if len(layouts) == 0 {
		layouts = p.cfg.DateTimeLayouts
	}
	t, err := p.parse(s, layouts)
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(t), nil
}

func (p *Parser) parse(s string, layouts []string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, p.cfg.Location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Today returns the current day in the local time zone.
func Today() Date { return defaultParser.Today() }

// Now returns the current local time truncated to seconds.
func Now() DateTime { return defaultParser.Now() }

// ParseDate parses s with the default parser.
func ParseDate(s string, layouts ...string) (Date, error) {
	return defaultParser.ParseDate(s, layouts...)
}

// ParseDateTime parses s with the default parser.
func ParseDateTime(s string, layouts ...string) (DateTime, error) {
	return defaultParser.ParseDateTime(s, layouts...)
}
