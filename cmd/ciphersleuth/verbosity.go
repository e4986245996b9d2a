package main

import "strconv"

// verbosity is a repeatable flag.Value: each -v/--verbose occurrence bumps
// the counter by one, so "-v -v -v" reaches level 3. Combined short forms
// such as "-vvv" are not accepted by the flag package.
type verbosity int

func (v *verbosity) String() string {
	return strconv.Itoa(int(*v))
}

func (v *verbosity) Set(string) error {
	*v++
	return nil
}

// IsBoolFlag lets the flag package accept -v with no following argument.
func (v *verbosity) IsBoolFlag() bool {
	return true
}
