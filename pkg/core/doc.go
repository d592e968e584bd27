// Package core runs tint's generation pipeline.
//
// Generate takes the three locations a run works with (configuration file,
// templates directory, output root) and:
//
//  1. validates them
//  2. loads the configuration and checks the "default" colorscheme exists
//  3. builds template definitions, explicit entries first, then every other
//     regular file in the templates directory
//  4. compiles all colorschemes in inheritance order
//  5. renders each template, in source name order
//
// Everything up to and including compilation is validated before any file is
// written. Rendering stops at the first failure unless KeepGoing is set, in
// which case all failures are reported together.
//
// ListColorschemes and ShowColorscheme load and compile the configuration
// without rendering, for inspection commands.
package core
