package main

import "errors"

const (
	calcRows   = 5
	calcCols   = 4
	calcStartX = 20
	calcStartY = 5
	calcDispX  = 15
	calcDispY  = 3
	calcMaxLen = 31 // digits in one operand
)

var calcLayout = [calcRows][calcCols]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", "=", "+"},
	{"C", "Q", "", ""},
}

// calculator is the state of the on-screen calculator.
type calculator struct {
	cx, cy int // highlighted button

	display  string
	input    []byte // operand being typed
	operand1 int
	op       byte

	expecting      bool // operator entered, operand 2 not started
	justCalculated bool // = pressed, next digit starts afresh
}

func newCalculator() *calculator {
	return &calculator{display: "0"}
}

func (c *calculator) clearAll() {
	*c = calculator{cx: c.cx, cy: c.cy, display: "0"}
}

// key applies one key press. w, a, s and d move the highlight and Enter
// presses the highlighted button. It reports true when Q is pressed.
// Dividing by zero returns errDivideByZero and leaves a result of 0.
func (c *calculator) key(ch byte) (bool, error) {
	switch ch {
	case 'w', 'W':
		if c.cy > 0 {
			c.cy--
		}
	case 's', 'S':
		if c.cy < calcRows-1 {
			c.cy++
		}
	case 'a', 'A':
		if c.cx > 0 {
			c.cx--
		}
	case 'd', 'D':
		if c.cx < calcCols-1 {
			c.cx++
		}
	case '\n':
		return c.press(calcLayout[c.cy][c.cx])
	}
	return false, nil
}

func (c *calculator) press(label string) (bool, error) {
	if label == "" {
		return false, nil
	}
	switch b := label[0]; {
	case b >= '0' && b <= '9':
		if c.justCalculated || (c.expecting && len(c.input) == 0) {
			c.input = c.input[:0]
			c.display = "0"
			c.justCalculated = false
		}
		if len(c.input) < calcMaxLen {
			c.input = append(c.input, b)
			c.display = string(c.input)
		}
	case b == '.':
		// integer only
	case b == 'C':
		c.clearAll()
	case b == 'Q':
		return true, nil
	case b == '=':
		return false, c.compute()
	default:
		var err error
		if len(c.input) > 0 {
			if c.op != 0 {
				err = c.compute()
			} else {
				c.operand1 = atoi(string(c.input))
			}
		}
		c.justCalculated = false
		c.op = b
		c.expecting = true
		c.input = c.input[:0]
		c.display = label
		return false, err
	}
	return false, nil
}

// compute applies the pending operator to operand 1 and the typed
// operand. The result becomes operand 1 and is displayed.
func (c *calculator) compute() error {
	if c.op == 0 || len(c.input) == 0 {
		return nil
	}
	operand2 := atoi(string(c.input))
	var (
		result int
		err    error
	)
	switch c.op {
	case '+':
		result = addN(c.operand1, operand2)
	case '-':
		result = subtract(c.operand1, operand2)
	case '*':
		result = multiplyN(c.operand1, operand2)
	case '/':
		result, err = divide(c.operand1, operand2)
	}
	c.operand1 = result
	c.display = itoa(result, 10)
	c.input = c.input[:0]
	c.op = 0
	c.expecting = false
	c.justCalculated = true
	return err
}

func (k *Kernel) drawCalculator(calc *calculator) {
	c := k.cons
	c.clear()

	c.printAt("-----------------------------------", calcDispX, calcDispY-1, whiteOnBlack)
	c.printAt("|                                 |", calcDispX, calcDispY, whiteOnBlack)
	c.printAt("-----------------------------------", calcDispX, calcDispY+1, whiteOnBlack)
	c.printAt(calc.display, calcDispX+2, calcDispY, yellowOnBlack)

	for y, row := range calcLayout {
		for x, label := range row {
			if label == "" {
				continue
			}
			a := whiteOnBlack
			if x == calc.cx && y == calc.cy {
				a = blackOnWhite
			}
			c.printAt(label, calcStartX+x*4, calcStartY+y, a)
		}
	}
}

func (k *Kernel) runCalculator() {
	calc := newCalculator()
	for {
		k.drawCalculator(calc)
		quit, err := calc.key(k.getc())
		if errors.Is(err, errDivideByZero) {
			k.divideByZero()
		}
		if quit {
			return
		}
	}
}
