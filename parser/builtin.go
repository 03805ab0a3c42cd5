package parser

import (
	"fmt"
	"sort"
	"strings"
)

// libraryHeaders declares the functions of the core library in the same
// syntax as user-defined function headers.
const libraryHeaders = `
// app
function AppName$()
function AppArgs&()
function Run$(command$)

// console
function Input$(prompt$)
function Print(msg$)

// dir
function DirContents&(path$)
function CurrentDir$()
function ChangeDir(dir$)
function FullPath$(filename$)

// file
function FileType%(filename$)
function DeleteFile(filename$)
function LoadString$(filename$)
function SaveString(filename$, str$, append%)

// list
function ListSize%(list&)
function RemoveIndex(list&, index%)
function ClearList(list&)

// dict
function Contains%(dict!, key$)
function RemoveKey(dict!, key$)
function DictSize%(dict!)
function ClearDict(dict!)
function DictKeys&(dict!)

// math
function ASin#(x#)
function ATan#(x#)
function ATan2#(y#, x#)
function Abs#(x#)
function Ceil#(x#)
function Clamp#(x#, min#, max#)
function Cos#(x#)
function Exp#(x#)
function Floor#(x#)
function Int%(x#)
function Log#(x#)
function Max#(x#, y#)
function Min#(x#, y#)
function Pow#(x#, y#)
function Sgn#(x#)
function Sin#(x#)
function Sqrt#(x#)
function Tan#(x#)

// memory
function Dim@(size%)
function Undim(mem@)
function Redim(mem@, size%)
function LoadDim@(filename$)
function SaveDim(mem@, filename$)
function DimSize%(mem@)
function PeekByte%(mem@, offset%)
function PeekShort%(mem@, offset%)
function PeekInt%(mem@, offset%)
function PeekFloat#(mem@, offset%)
function PeekString$(mem@, offset%)
function PokeByte(mem@, offset%, value%)
function PokeShort(mem@, offset%, value%)
function PokeInt(mem@, offset%, value%)
function PokeFloat(mem@, offset%, value#)
function PokeString(mem@, offset%, value$)

// string
function Len%(str$)
function Left$(str$, count%)
function Right$(str$, count%)
function Mid$(str$, offset%, count%)
function Lower$(str$)
function Upper$(str$)
function Find%(str$, find$, offset%)
function Replace$(str$, find$, replacement$)
function Trim$(str$)
function Asc%(str$, index%)
function Chr$(code%)
function StripExt$(filename$)
function StripDir$(filename$)
function ExtractExt$(filename$)
function ExtractDir$(filename$)

// conversion
function Str$(value%)
function StrF$(value#)
function Val%(str$)
function ValF#(str$)
function Split&(str$, delimiter$)
function Join$(list&, separator$)
`

var library = mustParseLibrary(libraryHeaders)

// Library returns the core library functions ordered by name.
func Library() []*Function {
	funcs := make([]*Function, 0, len(library))
	for _, f := range library {
		funcs = append(funcs, f)
	}
	sort.Slice(funcs, func(i, j int) bool {
		return funcs[i].Name < funcs[j].Name
	})
	return funcs
}

// FindLibraryFunction looks up a core library function, ignoring case.
func FindLibraryFunction(name string) *Function {
	return library[strings.ToLower(name)]
}

func mustParseLibrary(text string) map[string]*Function {
	lib, err := parseLibrary("library", text)
	if err != nil {
		panic(err)
	}
	return lib
}

// parseLibrary reads a sequence of function headers.
func parseLibrary(name, text string) (lib map[string]*Function, err error) {
	p := NewParser(name, text)
	defer p.recover(&err)

	p.readItems()

	lib = make(map[string]*Function)
	for p.skipEOLs(); p.peek().typ != itemEOF; p.skipEOLs() {
		if p.peek().typ != itemFunction {
			p.errorf("library can only contain function headers, got %s", p.next())
		}
		f := p.parseFunctionHeader()
		key := strings.ToLower(f.Name)
		if _, ok := lib[key]; ok {
			p.errorf("duplicate library function %s", f.Name)
		}
		f.Builtin = true
		lib[key] = f
		p.parseStatementEnd()
	}

	if len(lib) == 0 {
		return nil, fmt.Errorf("%s: no functions declared", name)
	}

	return lib, nil
}
