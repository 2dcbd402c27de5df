package driver

import (
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"adtc/internal/diag"
	"adtc/internal/emit"
	"adtc/internal/logger"
	"adtc/internal/observ"
	"adtc/internal/source"
	"adtc/internal/target"
)

type GenerateResult struct {
	FileSet *source.FileSet
	Bag     *diag.Bag
	Outputs []string // files written by this run
	Skipped []string // sources whose cached outputs were still intact
	Timer   *observ.Timer
}

// Generate compiles src, a file or a directory of sources, into dest.
// Sources are processed in path order, each one completely before the
// next. The first source with syntax or semantic errors stops the run
// with its diagnostics in the Bag and nothing emitted for it. Failures to
// read sources or write targets are returned as errors.
func Generate(src, dest string, opts Options) (*GenerateResult, error) {
	s, err := newSession(opts)
	if err != nil {
		return nil, err
	}
	res := &GenerateResult{
		FileSet: source.NewFileSet(),
		Bag:     diag.NewBag(opts.maxDiagnostics()),
		Timer:   observ.NewTimer(),
	}

	idx := res.Timer.Begin("collect")
	paths, err := source.Collect(src, opts.extension())
	if err != nil {
		res.Timer.End(idx, "")
		return res, err
	}
	res.Timer.End(idx, fmt.Sprintf("%d sources", len(paths)))

	var cache *DiskCache
	if opts.Cache || opts.ClearCache {
		if cache, err = OpenDiskCache(opts.CacheDir); err != nil {
			return res, err
		}
		if opts.ClearCache {
			if err := cache.DropAll(); err != nil {
				return res, err
			}
			logger.Logger.Infow("cleared cache", "dir", cache.dir)
		}
		if !opts.Cache {
			cache = nil
		}
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return res, errors.Wrapf(err, "resolving destination %q", dest)
	}

	g := &generation{
		session: s,
		res:     res,
		cache:   cache,
		dest:    absDest,
		factory: target.NewFileFactory(dest, s.backend.FileExtension()),
		emitter: emit.New(s.backend, opts.version()),
	}
	for _, p := range paths {
		ok, err := g.source(p)
		if err != nil {
			return res, err
		}
		if !ok {
			break
		}
	}
	return res, nil
}

type generation struct {
	*session
	res     *GenerateResult
	cache   *DiskCache
	dest    string
	factory *target.FileFactory
	emitter *emit.DocEmitter
}

// source runs the pipeline on one file. It returns false when the file
// produced error diagnostics.
func (g *generation) source(path string) (bool, error) {
	timer := g.res.Timer

	idx := timer.Begin("load")
	fileID, err := g.res.FileSet.Load(path)
	timer.End(idx, path)
	if err != nil {
		return false, errors.Wrapf(err, "cannot load source %q", path)
	}
	file := g.res.FileSet.Get(fileID)

	key := g.cacheKey(file.Hash, g.dest)
	if g.cache != nil {
		var payload DiskPayload
		hit, err := g.cache.Get(key, &payload)
		if err != nil {
			logger.Logger.Warnw("ignoring unreadable cache entry", "source", path, "error", err)
		} else if hit && payload.Fresh() {
			logger.Logger.Infow("unchanged, skipping", "source", path)
			g.res.Skipped = append(g.res.Skipped, path)
			return true, nil
		}
	}

	idx = timer.Begin("parse")
	doc := g.parse(file, g.res.Bag)
	timer.End(idx, path)
	if doc == nil {
		return false, nil
	}

	idx = timer.Begin("check")
	ok := g.check(file, doc, g.res.Bag)
	timer.End(idx, path)
	if !ok {
		return false, nil
	}

	idx = timer.Begin("emit")
	err = g.emitter.Emit(g.factory, doc)
	timer.End(idx, fmt.Sprintf("%d types", len(doc.DataTypes)))
	if err != nil {
		return false, errors.Wrapf(err, "generating from %s", path)
	}

	payload := DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Source:  path,
		Backend: g.backend.Name(),
		Version: g.opts.version(),
	}
	for _, dt := range doc.DataTypes {
		out := g.factory.PathFor(doc.QualifiedName(dt))
		g.res.Outputs = append(g.res.Outputs, out)
		if g.cache == nil {
			continue
		}
		d, err := fileDigest(out)
		if err != nil {
			return false, errors.Wrapf(err, "hashing %s", out)
		}
		payload.Outputs = append(payload.Outputs, out)
		payload.OutputHashes = append(payload.OutputHashes, d)
	}
	logger.Logger.Infow("generated", "source", path, "types", len(doc.DataTypes))

	if err := g.cache.Put(key, &payload); err != nil {
		logger.Logger.Warnw("cannot update cache", "source", path, "error", err)
	}
	return true, nil
}
