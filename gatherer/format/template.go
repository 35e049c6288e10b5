package format

import (
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/jeffrom/hostfacts/facts"
)

// Data is passed to user templates.
type Data struct {
	Facts facts.Facts
}

func writeTemplate(w io.Writer, fs facts.Facts, body string) error {
	if body == "" {
		return ErrNoTemplate
	}
	tmpl, err := template.New("hostfacts").Funcs(tmplHelpers(fs)).Parse(body)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, Data{Facts: fs})
}

func tmplHelpers(fs facts.Facts) template.FuncMap {
	fns := template.FuncMap{
		"fact":  factFn(fs),
		"facts": factsFn(fs),
		"names": fs.Names,
	}

	spfns := sprig.HermeticTxtFuncMap()
	for k, fn := range spfns {
		if _, ok := fns[k]; ok {
			continue
		}
		fns[k] = fn
	}

	return fns
}

// factFn returns all values of the named fact joined with ", ".
func factFn(fs facts.Facts) func(string) string {
	return func(name string) string {
		vals, _ := fs.Values(name)
		return strings.Join(vals, ", ")
	}
}

func factsFn(fs facts.Facts) func(string) []string {
	return func(name string) []string {
		vals, _ := fs.Values(name)
		return vals
	}
}
