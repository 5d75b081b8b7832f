// Command mnclres inspects monocle resource maps: it loads a resource map
// from a directory or zip archive and prints its data resources as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/monocle"
	"go.uber.org/zap"
)

func main() {
	var (
		dir     = flag.String("dir", "", "Resource directory")
		zipFile = flag.String("zip", "", "Resource zip archive (searched before -dir)")
		resmap  = flag.String("resmap", "", "Resource map to load")
		name    = flag.String("data", "", "Only print this data resource")
		check   = flag.Bool("check", false, "Validate the resource map against the schema")
		schema  = flag.Bool("schema", false, "Print the resource map JSON schema and exit")
		verbose = flag.Bool("v", false, "Log resource loading")
	)
	flag.Parse()

	if *schema {
		b, err := monocle.Schema()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(b))
		return
	}

	if *resmap == "" || (*dir == "" && *zipFile == "") {
		fmt.Fprintln(os.Stderr, "Usage: mnclres -dir <dir> | -zip <file.zip> -resmap <name.json> [-data name] [-check] [-v]")
		fmt.Fprintln(os.Stderr, "       mnclres -schema")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			monocle.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if err := run(os.Stdout, *dir, *zipFile, *resmap, *name, *check); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, dir, zipFile, resmap, name string, check bool) error {
	res := monocle.NewResources()
	defer res.Close()

	if dir != "" {
		if err := res.AddDirectory(dir); err != nil {
			return err
		}
	}
	if zipFile != "" {
		if err := res.AddZipFile(zipFile); err != nil {
			return err
		}
	}

	if check {
		raw, err := res.Raw(resmap)
		if err != nil {
			return err
		}
		if err := monocle.ValidateResmap(raw); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s: valid\n", resmap)
	}

	if err := res.LoadResmap(resmap); err != nil {
		return err
	}

	names := res.DataNames()
	if name != "" {
		if _, ok := res.DataResource(name); !ok {
			return fmt.Errorf("data %s: %w", name, monocle.ErrResourceNotFound)
		}
		names = []string{name}
	}
	out := make(map[string]any, len(names))
	for _, n := range names {
		v, err := res.Data(n)
		if err != nil {
			return fmt.Errorf("data %s: %w", n, err)
		}
		out[n] = v
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if name != "" {
		return enc.Encode(out[name])
	}
	if len(out) == 0 {
		fmt.Fprintf(os.Stderr, "%s has no data resources\n", resmap)
	}
	return enc.Encode(out)
}
