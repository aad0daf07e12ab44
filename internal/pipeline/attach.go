package pipeline

import (
	"fmt"
	"go/token"
	"sort"
	"strings"

	"github.com/mvvmgo/mvvmgen/internal/diagnostics"
	"github.com/mvvmgo/mvvmgen/internal/synth"
	"github.com/mvvmgo/mvvmgen/internal/synth/writer"
)

const generatedHeader = "// Code generated by mvvmgen. DO NOT EDIT."

// File is one assembled output file.
type File struct {
	Name    string
	Content []byte
}

// Assemble turns synthesized units into output files: one file per candidate
// holding its accessor members, plus one state-struct file per containing
// type aggregating the backing fields. Output order is sorted by file name
// so repeated runs over the same models are byte-identical. Colliding output
// names, including a candidate claiming a state-file name, are reported and
// resolved last-wins.
func Assemble(units []*synth.Unit, bag *diagnostics.Bag) []File {
	byName := make(map[string]*synth.Unit)
	var order []string
	for _, u := range units {
		if prev, ok := byName[u.Name]; ok {
			bag.Add(diagnostics.New(diagnostics.OutputNameCollision, token.Position{}, u.Candidate,
				prev.Candidate, u.Candidate, u.Name))
		} else {
			order = append(order, u.Name)
		}
		byName[u.Name] = u
	}
	sort.Strings(order)

	stateFiles := assembleStateFiles(byName, order)
	stateNames := make(map[string]bool, len(stateFiles))
	for _, f := range stateFiles {
		stateNames[f.Name] = true
	}

	var files []File
	for _, name := range order {
		u := byName[name]
		if stateNames[u.Name] {
			// A candidate named "State" produces the same file name as the
			// per-type state struct. The state file is assembled after the
			// candidate files, so it wins.
			label := strings.TrimSuffix(u.Name, ".State.g.go") + " state struct"
			bag.Add(diagnostics.New(diagnostics.OutputNameCollision, token.Position{}, u.Candidate,
				u.Candidate, label, u.Name))
			continue
		}
		files = append(files, assembleUnit(u))
	}
	files = append(files, stateFiles...)

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files
}

func assembleUnit(u *synth.Unit) File {
	w := writer.NewWriter("\t")
	w.WriteLine(generatedHeader)
	w.BlankLine()
	w.WriteLinef("package %s", u.PackageName)
	w.BlankLine()
	// Accessor members never need the unit's field imports; imports are
	// emitted only when a member body references them.
	writeImports(w, propertyImports(u))
	for i, m := range u.Properties() {
		if i > 0 {
			w.BlankLine()
		}
		w.Write(m.Text)
	}
	return File{Name: u.Name, Content: w.Bytes()}
}

// assembleStateFiles emits one "{Type}.State.g.go" per containing type that
// has field members, declaring the embeddable state struct.
func assembleStateFiles(byName map[string]*synth.Unit, order []string) []File {
	type state struct {
		unit   *synth.Unit
		fields []synth.Member
		seen   map[string]bool
	}
	states := make(map[string]*state)
	var typeOrder []string

	for _, name := range order {
		u := byName[name]
		fields := u.Fields()
		if len(fields) == 0 {
			continue
		}
		s, ok := states[u.TypeName]
		if !ok {
			s = &state{unit: u, seen: make(map[string]bool)}
			states[u.TypeName] = s
			typeOrder = append(typeOrder, u.TypeName)
		}
		s.fields = append(s.fields, fields...)
		for _, imp := range u.Imports {
			s.seen[imp] = true
		}
	}
	sort.Strings(typeOrder)

	var files []File
	for _, typeName := range typeOrder {
		s := states[typeName]
		imports := make([]string, 0, len(s.seen))
		for imp := range s.seen {
			imports = append(imports, imp)
		}
		sort.Strings(imports)

		w := writer.NewWriter("\t")
		w.WriteLine(generatedHeader)
		w.BlankLine()
		w.WriteLinef("package %s", s.unit.PackageName)
		w.BlankLine()
		writeImports(w, imports)
		w.WriteComment(fmt.Sprintf("%sState holds the backing storage for the generated members of", typeName))
		w.WriteComment(fmt.Sprintf("%s. Embed it in %s.", typeName, typeName))
		w.WriteLinef("type %sState struct {", typeName)
		w.Indent()
		for _, f := range s.fields {
			w.WriteLine(f.Text)
		}
		w.Dedent()
		w.WriteLine("}")
		files = append(files, File{
			Name:    fmt.Sprintf("%s.State.g.go", typeName),
			Content: w.Bytes(),
		})
	}
	return files
}

// propertyImports returns the unit imports actually referenced by accessor
// member bodies.
func propertyImports(u *synth.Unit) []string {
	var used []string
	for _, imp := range u.Imports {
		pkgName := imp[strings.LastIndex(imp, "/")+1:]
		for _, m := range u.Properties() {
			if strings.Contains(m.Text, pkgName+".") {
				used = append(used, imp)
				break
			}
		}
	}
	sort.Strings(used)
	return used
}

func writeImports(w *writer.Writer, imports []string) {
	if len(imports) == 0 {
		return
	}
	if len(imports) == 1 {
		w.WriteLinef("import %q", imports[0])
		w.BlankLine()
		return
	}
	w.WriteLine("import (")
	w.Indent()
	for _, imp := range imports {
		w.WriteLinef("%q", imp)
	}
	w.Dedent()
	w.WriteLine(")")
	w.BlankLine()
}
