package models

// NDFilter is a neutral-density filter wheel position label, written as
// "OD <number>" where the number is the optical density of the filter
// (e.g. "OD 0.1", "OD 4.0").
type NDFilter string

func (f NDFilter) String() string {
	return string(f)
}
