// Package app serves a small web UI for browsing the NBT data of a world
// directory: level.dat style files, raw .nbt dumps, and Anvil region files.
package app

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-sprout/sprout"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jmoiron/nbtkit/internal/app/mcformat"
	"github.com/jmoiron/nbtkit/nbt"
	"github.com/jmoiron/nbtkit/region"
)

//go:embed templates/*.gohtml static/*
var templatesFS embed.FS

// App serves the world browser rooted at a directory.
type App struct {
	Root    string
	Verbose int
	tpl     *template.Template
}

func New(root string, verbose int) (*App, error) {
	a := &App{Root: root, Verbose: verbose}

	sub, _ := fs.Sub(templatesFS, "templates")
	sh := sprout.New()
	funcs := sh.Build()
	funcs["mc"] = func(s string) template.HTML { return mcformat.Format(s) }
	funcs["strip"] = mcformat.Strip
	funcs["add"] = func(a, b int) int { return a + b }
	tpl, err := template.New("base").Funcs(funcs).ParseFS(sub, "*.gohtml")
	if err != nil {
		return nil, err
	}
	a.tpl = tpl
	return a, nil
}

func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if a.Verbose > 0 {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	mime.AddExtensionType(".css", "text/css")
	staticFS, _ := fs.Sub(templatesFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Get("/", a.index)
	r.Get("/view", a.view)
	r.Get("/json", a.jsonDump)
	r.Get("/region", a.regionTable)
	r.Get("/chunk", a.chunk)

	return r
}

func (a *App) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.tpl.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// FileEntry is one browsable file under the root.
type FileEntry struct {
	Rel    string
	Size   int64
	Region bool
}

// nbtExts are the NBT file suffixes shown in the index; region files (.mca)
// are listed as well.
var nbtExts = map[string]bool{".dat": true, ".dat_old": true, ".nbt": true}

// listFiles walks the root for NBT and region files, sorted with numeric
// collation so r.2.mca sorts before r.10.mca.
func (a *App) listFiles() ([]FileEntry, error) {
	var files []FileEntry
	err := filepath.WalkDir(a.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := filepath.Ext(p)
		if !nbtExts[ext] && ext != ".mca" {
			return nil
		}
		rel, err := filepath.Rel(a.Root, p)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, FileEntry{
			Rel:    filepath.ToSlash(rel),
			Size:   info.Size(),
			Region: ext == ".mca",
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	c := collate.New(language.Und, collate.Numeric)
	sort.Slice(files, func(i, j int) bool {
		return c.CompareString(files[i].Rel, files[j].Rel) < 0
	})
	return files, nil
}

// resolve maps a request-supplied relative path to a file under the root.
// The path is cleaned against "/", which drops leading ".." components, so
// the result never leaves the root; an empty path is rejected.
func (a *App) resolve(rel string) (string, error) {
	rel = path.Clean("/" + rel)[1:]
	if rel == "" || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("bad path %q", rel)
	}
	return filepath.Join(a.Root, filepath.FromSlash(rel)), nil
}

// loadTag reads an NBT file, transparently decompressing a gzip envelope.
func (a *App) loadTag(p string) (nbt.Tag, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	if len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b {
		zr, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		if b, err = io.ReadAll(zr); err != nil {
			return nil, err
		}
	}
	return nbt.Decode(b)
}

func (a *App) index(w http.ResponseWriter, r *http.Request) {
	files, err := a.listFiles()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	a.render(w, "index.gohtml", M{"Title": "nbtkit", "Root": a.Root, "Files": files})
}

func (a *App) view(w http.ResponseWriter, r *http.Request) {
	rel := r.URL.Query().Get("p")
	p, err := a.resolve(rel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	t, err := a.loadTag(p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	a.render(w, "view.gohtml", M{
		"Title":   rel,
		"Path":    rel,
		"Printed": nbt.Print(t),
	})
}

func (a *App) jsonDump(w http.ResponseWriter, r *http.Request) {
	rel := r.URL.Query().Get("p")
	p, err := a.resolve(rel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	t, err := a.loadTag(p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.Encode(nbt.Generic(t))
}

// ChunkCell is one cell of the region chunk table.
type ChunkCell struct {
	X, Z      int
	Exists    bool
	Timestamp int32
}

func (a *App) regionTable(w http.ResponseWriter, r *http.Request) {
	rel := r.URL.Query().Get("p")
	p, err := a.resolve(rel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	b, err := os.ReadFile(p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	rg, err := region.Load(b)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	rows := make([][]ChunkCell, 32)
	count := 0
	for z := 0; z < 32; z++ {
		rows[z] = make([]ChunkCell, 32)
		for x := 0; x < 32; x++ {
			cell := ChunkCell{X: x, Z: z, Exists: rg.Exists(x, z), Timestamp: rg.Timestamp(x, z)}
			if cell.Exists {
				count++
			}
			rows[z][x] = cell
		}
	}
	a.render(w, "region.gohtml", M{
		"Title": rel,
		"Path":  rel,
		"Rows":  rows,
		"Count": count,
	})
}

func (a *App) chunk(w http.ResponseWriter, r *http.Request) {
	rel := r.URL.Query().Get("p")
	p, err := a.resolve(rel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	x, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		http.Error(w, "bad x", http.StatusBadRequest)
		return
	}
	z, err := strconv.Atoi(r.URL.Query().Get("z"))
	if err != nil {
		http.Error(w, "bad z", http.StatusBadRequest)
		return
	}
	b, err := os.ReadFile(p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	rg, err := region.Load(b)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	t, err := rg.ChunkTag(x, z)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	a.render(w, "view.gohtml", M{
		"Title":   fmt.Sprintf("%s chunk %d,%d", rel, x, z),
		"Path":    rel,
		"Printed": nbt.Print(t),
	})
}
