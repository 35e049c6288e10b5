package stdio

import (
	"fmt"
	"strings"
)

func (o StdIO) Printf(msg string, args ...interface{}) {
	fmt.Fprintf(o.Stdout(), msg, args...)
}

func (o StdIO) Println(args ...interface{}) {
	fmt.Fprintln(o.Stdout(), args...)
}

func (o StdIO) Info(args ...interface{}) {
	if o.Quiet {
		return
	}
	fmt.Fprintln(o.Stderr(), args...)
}

func (o StdIO) Infof(msg string, args ...interface{}) {
	if o.Quiet {
		return
	}
	fmt.Fprintf(o.Stderr(), fmtScopes(o.scopes)+msg+"\n", args...)
}

func (o StdIO) Debug(args ...interface{}) {
	if !o.Verbose {
		return
	}
	msg := fmt.Sprintf("%sDEBUG:", fmtScopes(o.scopes))
	fmt.Fprintln(o.Stderr(), append([]interface{}{msg}, args...)...)
}

func (o StdIO) Debugf(msg string, args ...interface{}) {
	if !o.Verbose {
		return
	}
	msg = fmt.Sprintf("%sDEBUG: %s", fmtScopes(o.scopes), msg)
	fmt.Fprintf(o.Stderr(), msg+"\n", args...)
}

func (o StdIO) Warning(args ...interface{}) {
	if o.Quiet {
		return
	}
	msg := fmt.Sprintf("%sWARNING:", fmtScopes(o.scopes))
	fmt.Fprintln(o.Stderr(), append([]interface{}{msg}, args...)...)
}

func (o StdIO) Warningf(msg string, args ...interface{}) {
	if o.Quiet {
		return
	}
	fmt.Fprintf(o.Stderr(), fmtScopes(o.scopes)+"WARNING: "+msg+"\n", args...)
}

// fmtScopes renders scopes as a "a:b: " prefix, or nothing.
func fmtScopes(scopes []string) string {
	if len(scopes) == 0 {
		return ""
	}
	return strings.Join(scopes, ":") + ": "
}
