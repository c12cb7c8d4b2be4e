package conf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

// flagType is an internal interface for all flags.
// Every flag should have method for creating `envName` from its name and `clear` method
// for clearing corresponding environment variable from env.
type flagType interface {
	envName() string
	clear()
}

// definedFlags stores all the defined flags by name to catch conflicting redefinitions.
var definedFlags = map[string]flagType{}

// envName returns the environment variable name for a flag name,
// e.g. "data_dir" becomes "BDSM_DATA_DIR".
func envName(flagName string) string {
	return fmt.Sprintf("%s_%s", envPrefix, strings.ToUpper(flagName))
}

// cliAndEnvFlag represents option's definition from CLI and Environment variable.
type cliAndEnvFlag struct {
	*kingpin.FlagClause
}

func newCliAndEnvFlag(flagName string, description string, defaultValue string) *cliAndEnvFlag {
	c := &cliAndEnvFlag{FlagClause: app.Flag(flagName, description)}
	c.OverrideDefaultFromEnvar(c.envName())
	if defaultValue != "" {
		c.Default(defaultValue)
	}
	return c
}

func (f *cliAndEnvFlag) envName() string {
	return envName(f.Model().Name)
}

// clear unsets the corresponding environment variable.
func (f *cliAndEnvFlag) clear() {
	os.Unsetenv(f.envName())
}

// lookupFlag returns an already registered flag with given name. It panics
// when the name was registered with a different flag type.
func lookupFlag(flagName string, sameType func(flagType) bool) flagType {
	duplicatedFlag, ok := definedFlags[flagName]
	if !ok {
		return nil
	}
	if !sameType(duplicatedFlag) {
		panic(fmt.Sprintf("flag %q was redefined with different type", flagName))
	}
	return duplicatedFlag
}

func register(flagName string, flag flagType) {
	definedFlags[flagName] = flag
	isEnvParsed = false
}

// StringFlag represents flag with string value.
type StringFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *string
}

// NewStringFlag is a constructor of StringFlag struct.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	if f := lookupFlag(flagName, func(f flagType) bool { _, ok := f.(*StringFlag); return ok }); f != nil {
		flagDef := f.(*StringFlag)
		if flagDef.defaultValue != defaultValue {
			panic(fmt.Sprintf("flag %q was redefined with different default value", flagName))
		}
		return flagDef
	}

	flagDef := &StringFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.String()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s StringFlag) Value() string {
	if !isEnvParsed {
		return s.defaultValue
	}
	return *s.value
}

// IntFlag represents flag with int value.
type IntFlag struct {
	*cliAndEnvFlag
	defaultValue int
	value        *int
}

// NewIntFlag is a constructor of IntFlag struct.
func NewIntFlag(flagName string, description string, defaultValue int) *IntFlag {
	if f := lookupFlag(flagName, func(f flagType) bool { _, ok := f.(*IntFlag); return ok }); f != nil {
		flagDef := f.(*IntFlag)
		if flagDef.defaultValue != defaultValue {
			panic(fmt.Sprintf("flag %q was redefined with different default value", flagName))
		}
		return flagDef
	}

	flagDef := &IntFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.Itoa(defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Int()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (i IntFlag) Value() int {
	if !isEnvParsed {
		return i.defaultValue
	}
	return *i.value
}

// BoolFlag represents flag with bool value.
type BoolFlag struct {
	*cliAndEnvFlag
	defaultValue bool
	value        *bool
}

// NewBoolFlag is a constructor of BoolFlag struct.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	if f := lookupFlag(flagName, func(f flagType) bool { _, ok := f.(*BoolFlag); return ok }); f != nil {
		flagDef := f.(*BoolFlag)
		if flagDef.defaultValue != defaultValue {
			panic(fmt.Sprintf("flag %q was redefined with different default value", flagName))
		}
		return flagDef
	}

	flagDef := &BoolFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.FormatBool(defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Bool()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (b BoolFlag) Value() bool {
	if !isEnvParsed {
		return b.defaultValue
	}
	return *b.value
}
