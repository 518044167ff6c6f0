// Package generator turns resolved file specs into files on disk.
//
// # Features
//
//   - Template rendering with helper functions
//   - Two-phase execution: validate every operation, then execute
//   - Dry-run reporting without touching disk
//   - Project materialization with a hard "directory must not exist" guard
//
// # Materializing a project
//
//	specs := []generator.FileSpec{{Path: "package.json", Content: pkg}}
//	if err := generator.Materialize(ctx, "myapp", specs, generator.MaterializeOptions{}); err != nil {
//	    if errors.Is(err, generator.ErrDirectoryExists) {
//	        // nothing was written
//	    }
//	    return err
//	}
//
// Materialize never cleans up after itself; callers decide whether to
// remove a partially written root with RemoveAll.
package generator
