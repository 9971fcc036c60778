package main

import (
	"testing"

	"github.com/matryer/is"
)

// buttons returns the keys that move the highlight from (0,0) to label
// and press it.
func buttons(label string) string {
	for y, row := range calcLayout {
		for x, l := range row {
			if l != label {
				continue
			}
			keys := ""
			for i := 0; i < y; i++ {
				keys += "s"
			}
			for i := 0; i < x; i++ {
				keys += "d"
			}
			// back home afterwards
			keys += "\n"
			for i := 0; i < y; i++ {
				keys += "w"
			}
			for i := 0; i < x; i++ {
				keys += "a"
			}
			return keys
		}
	}
	panic("no button " + label)
}

func run(c *calculator, labels ...string) (bool, error) {
	var (
		quit bool
		err  error
	)
	for _, l := range labels {
		for _, k := range []byte(buttons(l)) {
			q, e := c.key(k)
			quit = quit || q
			if e != nil {
				err = e
			}
		}
	}
	return quit, err
}

func TestCalculatorArithmetic(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"1", "2", "+", "3", "="}, "15"},
		{[]string{"9", "-", "1", "2", "="}, "-3"},
		{[]string{"6", "*", "7", "="}, "42"},
		{[]string{"7", "/", "2", "="}, "3"},
		{[]string{"1", "+", "2", "+", "3", "="}, "6"},
		{[]string{"2", "*", "3", "="}, "6"},
		{[]string{"2", "+", "3", "=", "*", "4", "="}, "20"},
		{[]string{"2", "+", "3", "=", "8"}, "8"},
		{[]string{"5", "+"}, "+"},
		{[]string{"5", "+", "="}, "+"},
		{[]string{"5", "."}, "5"},
		{[]string{"5", "C"}, "0"},
		{[]string{}, "0"},
	}
	for _, tt := range tests {
		is := is.New(t)
		c := newCalculator()
		quit, err := run(c, tt.keys...)
		is.NoErr(err)
		is.True(!quit)
		is.Equal(c.display, tt.want)
	}
}

func TestCalculatorDivideByZero(t *testing.T) {
	is := is.New(t)
	c := newCalculator()
	_, err := run(c, "8", "/", "0", "=")
	is.Equal(err, errDivideByZero)
	is.Equal(c.display, "0")
	is.Equal(c.operand1, 0)
}

func TestCalculatorQuitButton(t *testing.T) {
	is := is.New(t)
	c := newCalculator()
	quit, err := run(c, "Q")
	is.NoErr(err)
	is.True(quit)
}

func TestCalculatorNavigationStaysOnGrid(t *testing.T) {
	is := is.New(t)
	c := newCalculator()
	for _, k := range []byte("wwwaaa") {
		c.key(k)
	}
	is.Equal(c.cx, 0)
	is.Equal(c.cy, 0)
	for _, k := range []byte("ssssssssdddddd") {
		c.key(k)
	}
	is.Equal(c.cx, calcCols-1)
	is.Equal(c.cy, calcRows-1)

	// empty slot
	quit, err := c.key('\n')
	is.NoErr(err)
	is.True(!quit)
	is.Equal(c.display, "0")
}

func TestCalculatorInputLimit(t *testing.T) {
	is := is.New(t)
	c := newCalculator()
	for i := 0; i < calcMaxLen+5; i++ {
		c.key('\n') // 7
	}
	is.Equal(len(c.input), calcMaxLen)
	is.Equal(len(c.display), calcMaxLen)
}
