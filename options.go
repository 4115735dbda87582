package xml2json

import "fmt"

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved() int {
	if !o.set {
		return 0
	}
	return o.value
}

type int64Option struct {
	value int64
	set   bool
}

func (o int64Option) resolved() int64 {
	if !o.set {
		return 0
	}
	return o.value
}

// Options configures a conversion. The zero value is valid and selects the
// default limits.
type Options struct {
	maxDepth      intOption
	maxInputBytes int64Option
}

// NewOptions returns a default, valid options value.
func NewOptions() Options {
	return Options{}
}

// Validate validates option values.
func (o Options) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithMaxDepth sets the element nesting limit (0 uses default).
func (o Options) WithMaxDepth(value int) Options {
	o.maxDepth = intOption{value: value, set: true}
	return o
}

// WithMaxInputBytes sets the largest document accepted by ConvertReader and
// ConvertFile (0 uses default).
func (o Options) WithMaxInputBytes(value int64) Options {
	o.maxInputBytes = int64Option{value: value, set: true}
	return o
}

// MaxDepth returns the effective element nesting limit.
func (o Options) MaxDepth() int {
	l, err := o.withDefaults()
	if err != nil {
		return defaultMaxDepth
	}
	return l.maxDepth
}

// MaxInputBytes returns the effective input size limit.
func (o Options) MaxInputBytes() int64 {
	l, err := o.withDefaults()
	if err != nil {
		return defaultMaxInputBytes
	}
	return l.maxInputBytes
}

func (o Options) withDefaults() (convertLimits, error) {
	limits, err := resolveConvertLimits(o.maxDepth.resolved(), o.maxInputBytes.resolved())
	if err != nil {
		return convertLimits{}, fmt.Errorf("convert limits: %w", err)
	}
	return limits, nil
}
