package log

import "github.com/spudtrooper/goutil/colorlog"

const (
	prefix = "[ghfollowers] "
)

func Printf(tmpl string, args ...interface{}) {
	colorlog.Printf(prefix+tmpl, args...)
}
