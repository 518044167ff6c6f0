// Package output provides styled terminal output for raph.
//
// # Usage
//
//	output.Success("Created demo")
//	output.Warn("git commit failed; the repository was kept")
//	output.Info("Next steps:")
//	output.Step("cd demo")
//	output.Error("directory already exists: demo")
//
// # Verbose Mode
//
//	output.SetVerbose(true)
//	output.Verbose("Resolved 14 files")
//
// # Summary
//
// Summary prints a markdown document. On a terminal it is rendered with
// glamour; otherwise the markdown is printed as is so logs stay readable.
//
// # Styling
//
//   - Success: ✨ green bold
//   - Error: ❌ red bold
//   - Warn: ⚠️ yellow
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
