package stage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// RGBFile is the system color database, tried after ./rgb.txt and before
// ../rgb.txt. Override it at link time:
//
//	go build -ldflags "-X github.com/gogpu/stage.RGBFile=/opt/sim/rgb.txt"
var RGBFile = "/usr/share/X11/rgb.txt"

// ColorDatabasePaths returns the ordered list of files LookupColor tries
// when it loads the color database. The first file that opens wins.
func ColorDatabasePaths() []string {
	paths := []string{"./rgb.txt"}
	if RGBFile != "" {
		paths = append(paths, RGBFile)
	}
	return append(paths, "../rgb.txt")
}

// ErrNoColorDatabase is reported when none of ColorDatabasePaths opens.
var ErrNoColorDatabase = errors.New("stage: no color database")

var errMalformedColorLine = errors.New("malformed color line")

// ColorTable maps color names to packed colors. Names are exact,
// case-sensitive keys.
type ColorTable struct {
	colors map[string]Color
}

// NewColorTable returns an empty table.
func NewColorTable() *ColorTable {
	return &ColorTable{colors: make(map[string]Color)}
}

// Set adds or replaces a named color.
func (t *ColorTable) Set(name string, c Color) {
	t.colors[name] = c
}

// Lookup returns the color registered under name.
func (t *ColorTable) Lookup(name string) (Color, bool) {
	c, ok := t.colors[name]
	return c, ok
}

// Len returns the number of named colors.
func (t *ColorTable) Len() int {
	return len(t.colors)
}

// Names returns the color names in sorted order.
func (t *ColorTable) Names() []string {
	return slices.Sorted(maps.Keys(t.colors))
}

// ParseColorTable reads a color database in the X11 rgb.txt format: one
// "R G B name" entry per line, each channel an integer in 0..255 and the
// name the rest of the line. Lines starting with '!', '#' or '%' are
// comments. The input is decoded as ISO-8859-1.
//
// Malformed lines are skipped and logged as warnings. An error is returned
// only when reading fails. Parsed colors are fully opaque.
func ParseColorTable(r io.Reader) (*ColorTable, error) {
	t := NewColorTable()

	sc := bufio.NewScanner(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	for lineno := 1; sc.Scan(); lineno++ {
		line := sc.Text()
		if line == "" || strings.ContainsRune("!#%", rune(line[0])) {
			continue
		}

		line = strings.TrimRight(line, " \t\r\n")
		if line == "" {
			continue
		}

		name, c, err := parseColorLine(line)
		if err != nil {
			Logger().Warn("stage: skipping color database line",
				"line", lineno, "text", line, "err", err)
			continue
		}
		t.Set(name, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("stage: read color database: %w", err)
	}

	return t, nil
}

// parseColorLine splits "R G B name" into its name and opaque color.
func parseColorLine(line string) (string, Color, error) {
	var rgb [3]uint8
	rest := line
	for i := range rgb {
		rest = strings.TrimLeft(rest, " \t")
		field := rest
		if end := strings.IndexAny(rest, " \t"); end >= 0 {
			field, rest = rest[:end], rest[end:]
		} else {
			rest = ""
		}

		v, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return "", 0, fmt.Errorf("%w: channel %d: %w", errMalformedColorLine, i, err)
		}
		rgb[i] = uint8(v)
	}

	name := strings.TrimLeft(rest, " \t")
	if name == "" {
		return "", 0, fmt.Errorf("%w: missing name", errMalformedColorLine)
	}
	return name, colorFromRGB(rgb[0], rgb[1], rgb[2]), nil
}

// LoadColorTable parses the color database file at path.
func LoadColorTable(path string) (*ColorTable, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("stage: open color database: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseColorTable(f)
}

// defaultColors is the process-wide table behind LookupColor.
var defaultColors struct {
	once  sync.Once
	table *ColorTable
}

// exitFunc terminates the process when no color database can be opened.
var exitFunc = os.Exit

// UseColorTable installs t as the process-wide color table, skipping the
// file search. It only takes effect before the first lookup and reports
// whether t was installed. A nil t installs an empty table.
func UseColorTable(t *ColorTable) bool {
	if t == nil {
		t = NewColorTable()
	}
	installed := false
	defaultColors.once.Do(func() {
		defaultColors.table = t
		installed = true
	})
	return installed
}

// LookupColor returns the color registered under name in the process-wide
// color database, loading the database on first use.
//
// An empty name and a name missing from the database both return
// ColorNotFound, which is the same value as opaque black. Use
// LookupColorOK to tell them apart.
//
// If none of ColorDatabasePaths can be opened, the failure is logged and
// the process exits: no color could ever be resolved.
func LookupColor(name string) Color {
	c, _ := LookupColorOK(name)
	return c
}

// LookupColorOK is like LookupColor but also reports whether name was
// found. An empty name is never found and does not load the database.
func LookupColorOK(name string) (Color, bool) {
	if name == "" {
		return ColorNotFound, false
	}

	defaultColors.once.Do(loadDefaultColors)
	return defaultColors.table.Lookup(name)
}

func loadDefaultColors() {
	t, err := openDefaultColors()
	if err != nil {
		Logger().Error("stage: color database unavailable", "err", err)
		defaultColors.table = NewColorTable()
		exitFunc(1)
		return
	}
	defaultColors.table = t
}

// openDefaultColors parses the first database in ColorDatabasePaths that
// opens.
func openDefaultColors() (*ColorTable, error) {
	paths := ColorDatabasePaths()
	for _, path := range paths {
		Logger().Debug("stage: opening color database", "path", path)
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			continue
		}

		t, err := ParseColorTable(f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		Logger().Debug("stage: loaded color database", "path", path, "colors", t.Len())
		return t, nil
	}
	return nil, fmt.Errorf("%w: tried %s", ErrNoColorDatabase, strings.Join(paths, ", "))
}
