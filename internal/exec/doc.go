// Package exec runs the external tools a scaffolded project needs after its
// files are written: package managers, code generators and git.
//
// An Executor is configured once with the working directory and output
// streams, then handed to each caller at run time:
//
//	ex := exec.NewExecutor(&exec.Options{Dir: root})
//	err := ex.Run(ctx, "npm", "install")
//
// GenericCommand offers a fluent builder on top of an Executor:
//
//	err := exec.NewGenericCommand(ex, "git").
//		WithArgs("init").
//		WithSpinner("Initializing git repository").
//		Run(ctx)
//
// Tests replace the process factory through Options.Command so no real
// binaries are started.
package exec
