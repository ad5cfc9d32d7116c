package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/replay"
	"github.com/sirupsen/logrus"
)

func main() {
	levelName := flag.String("level", "sandbox.json", "level file on disk or in levels/")
	inputName := flag.String("input", "jump_dash.yaml", "input sequence (.yaml) or script (.tengo)")
	specName := flag.String("spec", "player.yaml", "player spec in prefabs/")
	ticks := flag.Int("ticks", 300, "number of ticks to simulate")
	verbose := flag.Bool("v", false, "log every movement event")
	watch := flag.Bool("watch", false, "re-run whenever a spec, level or input file changes")
	flag.Parse()

	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	lg.Level = logrus.WarnLevel
	if *verbose {
		lg.Level = logrus.DebugLevel
	}

	run := func() {
		res, err := runOnce(lg, *levelName, *inputName, *specName, *ticks)
		if err != nil {
			lg.WithError(err).Error("replay failed")
			return
		}
		lg.WithFields(logrus.Fields{
			"ticks":   res.Ticks,
			"events":  len(res.Events),
			"x":       res.Position.X,
			"y":       res.Position.Y,
			"stamina": res.Stamina,
		}).Warn("replay finished")
		fmt.Printf("%016x\n", res.Digest)
	}

	run()
	if !*watch {
		return
	}

	dirs := watchDirs(*levelName, *inputName)
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		lg.WithError(err).Fatal("start watcher")
	}
	defer w.Close()
	lg.WithField("dirs", dirs).Warn("watching for changes")

	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			lg.WithField("file", path).Warn("change detected")
			run()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			lg.WithError(err).Error("watcher")
		}
	}
}

func runOnce(lg *logrus.Logger, levelName, inputName, specName string, ticks int) (replay.Result, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		return replay.Result{}, err
	}
	spec, err := prefabs.LoadPlayerSpecFile(specName)
	if err != nil {
		return replay.Result{}, err
	}
	src, err := loadSource(inputName)
	if err != nil {
		return replay.Result{}, err
	}

	r, err := replay.New(replay.Options{
		Level:  lvl,
		Spec:   spec,
		Source: src,
		Logger: lg.WithField("level", levelName),
	})
	if err != nil {
		return replay.Result{}, err
	}
	res := r.Run(ticks)
	if s, ok := src.(*input.Script); ok && s.Err() != nil {
		return res, s.Err()
	}
	return res, nil
}

// loadSource reads path from disk when it exists and from the embedded
// prefabs otherwise.
func loadSource(path string) (component.InputSource, error) {
	data, err := os.ReadFile(path)
	onDisk := err == nil
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tengo":
		if onDisk {
			return input.NewScript(filepath.Base(path), data)
		}
		return input.LoadScript(path)
	case ".yaml", ".yml":
		if onDisk {
			return input.ParseSequence(data)
		}
		return input.LoadSequence(path)
	}
	return nil, fmt.Errorf("unsupported input %q: want .yaml or .tengo", path)
}

func watchDirs(paths ...string) []string {
	dirs := []string{"prefabs", filepath.Join("prefabs", "scripts"), filepath.Join("prefabs", "sequences"), "levels"}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			dirs = append(dirs, filepath.Dir(p))
		}
	}
	seen := make(map[string]bool)
	out := dirs[:0]
	for _, d := range dirs {
		if seen[d] {
			continue
		}
		if info, err := os.Stat(d); err != nil || !info.IsDir() {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
