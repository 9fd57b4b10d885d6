package finder

import (
	"time"

	"github.com/jparise/ffind/internal/criteria"
	"github.com/jparise/ffind/internal/walker"
	"github.com/sirupsen/logrus"
)

// outcome is the result of a predicate that needs file metadata.
type outcome int

const (
	noMatch outcome = iota
	matched
	// indeterminate means the metadata could not be read.
	indeterminate
)

func (o outcome) String() string {
	switch o {
	case matched:
		return "match"
	case indeterminate:
		return "indeterminate"
	default:
		return "no match"
	}
}

func outcomeOf(ok bool) outcome {
	if ok {
		return matched
	}
	return noMatch
}

// collapse turns an outcome into a filter decision. Indeterminate entries
// fail the filter.
func (o outcome) collapse(log logrus.FieldLogger, e walker.Entry) bool {
	if o == indeterminate {
		log.WithField("path", e.Path).Debugf("excluded: %v, metadata unavailable", o)
	}
	return o == matched
}

// matchSize compares the entry's byte length, following links.
func (f *Finder) matchSize(e walker.Entry, spec criteria.SizeSpec) outcome {
	info, err := f.stat(e.Path)
	if err != nil {
		f.log.WithField("path", e.Path).Debugf("stat: %v", err)
		return indeterminate
	}
	return outcomeOf(spec.Matches(info.Size()))
}

// matchTime checks the relative age spec and the absolute change window.
func (f *Finder) matchTime(e walker.Entry, c *criteria.Criteria) outcome {
	info, err := f.stat(e.Path)
	if err != nil {
		f.log.WithField("path", e.Path).Debugf("stat: %v", err)
		return indeterminate
	}

	modTime := info.ModTime()
	if c.MTime != nil && !c.MTime.Matches(criteria.Age(f.now(), modTime)) {
		return noMatch
	}
	return outcomeOf(inWindow(modTime, c.ChangedAfter, c.ChangedBefore))
}

func inWindow(t time.Time, after, before *time.Time) bool {
	if after != nil && !t.After(*after) {
		return false
	}
	if before != nil && !t.Before(*before) {
		return false
	}
	return true
}
