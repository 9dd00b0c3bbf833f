// Package profile loads declarative command-line profiles.
//
// A profile describes a command, its options, flags, subcommands, arguments
// and environment in YAML, JSON or CUE. Profiles are read from a
// billy.Filesystem so they can come from disk, memory or any other billy
// implementation:
//
//	p, err := profile.Load(ctx, osfs.New("."), "deploy.yaml")
//	if err != nil {
//		return err
//	}
//	b, err := p.Builder(cmdline.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	err = b.WithArgument("production").Build().Execute(ctx)
//
// A Profile is also a cmdline.Appliable, so it can be layered onto an
// existing builder with WithAppliable.
//
// CUE and JSON profiles are validated against a closed CUE schema before
// decoding. YAML profiles are decoded strictly and reject unknown keys.
// Every profile is then checked by Validate.
package profile
