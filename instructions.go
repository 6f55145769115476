package dockerfile

// Add copies files, directories or remote URLs from <src> into the image at <dest>.
//
// See https://docs.docker.com/reference/dockerfile/#add
type Add string

func (Add) Kind() Kind { return KindAdd }
func (i Add) Value() string { return string(i) }
func (i Add) String() string { return render(KindAdd, string(i)) }
func (Add) instruction() {}

// Arg declares a build-time variable, optionally with a default (NAME or NAME=value).
//
// See https://docs.docker.com/reference/dockerfile/#arg
type Arg string

func (Arg) Kind() Kind { return KindArg }
func (i Arg) Value() string { return string(i) }
func (i Arg) String() string { return render(KindArg, string(i)) }
func (Arg) instruction() {}

// Cmd provides the default command for an executing container.
//
// See https://docs.docker.com/reference/dockerfile/#cmd
type Cmd string

func (Cmd) Kind() Kind { return KindCmd }
func (i Cmd) Value() string { return string(i) }
func (i Cmd) String() string { return render(KindCmd, string(i)) }
func (Cmd) instruction() {}

// Copy copies files or directories from <src> into the image at <dest>.
//
// See https://docs.docker.com/reference/dockerfile/#copy
type Copy string

func (Copy) Kind() Kind { return KindCopy }
func (i Copy) Value() string { return string(i) }
func (i Copy) String() string { return render(KindCopy, string(i)) }
func (Copy) instruction() {}

// Directive is a parser directive such as "escape=`" or "syntax=docker/dockerfile:1".
// It renders as a comment line and only has effect at the top of a Dockerfile.
//
// See https://docs.docker.com/reference/dockerfile/#parser-directives
type Directive string

func (Directive) Kind() Kind { return KindDirective }
func (i Directive) Value() string { return string(i) }
func (i Directive) String() string { return render(KindDirective, string(i)) }
func (Directive) instruction() {}

// Entrypoint configures the executable a container runs.
//
// See https://docs.docker.com/reference/dockerfile/#entrypoint
type Entrypoint string

func (Entrypoint) Kind() Kind { return KindEntrypoint }
func (i Entrypoint) Value() string { return string(i) }
func (i Entrypoint) String() string { return render(KindEntrypoint, string(i)) }
func (Entrypoint) instruction() {}

// Env sets environment variables (key=value ...).
//
// See https://docs.docker.com/reference/dockerfile/#env
type Env string

func (Env) Kind() Kind { return KindEnv }
func (i Env) Value() string { return string(i) }
func (i Env) String() string { return render(KindEnv, string(i)) }
func (Env) instruction() {}

// Expose documents ports the container listens on (port[/protocol] ...).
//
// See https://docs.docker.com/reference/dockerfile/#expose
type Expose string

func (Expose) Kind() Kind { return KindExpose }
func (i Expose) Value() string { return string(i) }
func (i Expose) String() string { return render(KindExpose, string(i)) }
func (Expose) instruction() {}

// From starts a build stage from a base image (image[:tag] [AS name]).
// Additional From instructions pushed after the base begin further stages.
//
// See https://docs.docker.com/reference/dockerfile/#from
type From string

func (From) Kind() Kind { return KindFrom }
func (i From) Value() string { return string(i) }
func (i From) String() string { return render(KindFrom, string(i)) }
func (From) instruction() {}

// Healthcheck tells the engine how to test that a container is still working,
// e.g. "CMD pgrep app" or "NONE".
//
// See https://docs.docker.com/reference/dockerfile/#healthcheck
type Healthcheck string

func (Healthcheck) Kind() Kind { return KindHealthcheck }
func (i Healthcheck) Value() string { return string(i) }
func (i Healthcheck) String() string { return render(KindHealthcheck, string(i)) }
func (Healthcheck) instruction() {}

// Label adds metadata to the image (key=value ...).
//
// See https://docs.docker.com/reference/dockerfile/#label
type Label string

func (Label) Kind() Kind { return KindLabel }
func (i Label) Value() string { return string(i) }
func (i Label) String() string { return render(KindLabel, string(i)) }
func (Label) instruction() {}

// Onbuild registers a trigger instruction that runs when the image is used as a
// base for another build. The payload is a complete instruction, e.g. "RUN make".
//
// See https://docs.docker.com/reference/dockerfile/#onbuild
type Onbuild string

func (Onbuild) Kind() Kind { return KindOnbuild }
func (i Onbuild) Value() string { return string(i) }
func (i Onbuild) String() string { return render(KindOnbuild, string(i)) }
func (Onbuild) instruction() {}

// Run executes a command in a new layer.
//
// See https://docs.docker.com/reference/dockerfile/#run
type Run string

func (Run) Kind() Kind { return KindRun }
func (i Run) Value() string { return string(i) }
func (i Run) String() string { return render(KindRun, string(i)) }
func (Run) instruction() {}

// Shell overrides the default shell used for shell-form commands. The payload
// must be a JSON array, see ExecForm.
//
// See https://docs.docker.com/reference/dockerfile/#shell
type Shell string

func (Shell) Kind() Kind { return KindShell }
func (i Shell) Value() string { return string(i) }
func (i Shell) String() string { return render(KindShell, string(i)) }
func (Shell) instruction() {}

// StopSignal sets the system call signal sent to stop the container.
//
// See https://docs.docker.com/reference/dockerfile/#stopsignal
type StopSignal string

func (StopSignal) Kind() Kind { return KindStopSignal }
func (i StopSignal) Value() string { return string(i) }
func (i StopSignal) String() string { return render(KindStopSignal, string(i)) }
func (StopSignal) instruction() {}

// User sets the user (and optionally group) for the rest of the stage.
//
// See https://docs.docker.com/reference/dockerfile/#user
type User string

func (User) Kind() Kind { return KindUser }
func (i User) Value() string { return string(i) }
func (i User) String() string { return render(KindUser, string(i)) }
func (User) instruction() {}

// Volume creates mount points (path ... or a JSON array).
//
// See https://docs.docker.com/reference/dockerfile/#volume
type Volume string

func (Volume) Kind() Kind { return KindVolume }
func (i Volume) Value() string { return string(i) }
func (i Volume) String() string { return render(KindVolume, string(i)) }
func (Volume) instruction() {}

// Workdir sets the working directory for following instructions.
//
// See https://docs.docker.com/reference/dockerfile/#workdir
type Workdir string

func (Workdir) Kind() Kind { return KindWorkdir }
func (i Workdir) Value() string { return string(i) }
func (i Workdir) String() string { return render(KindWorkdir, string(i)) }
func (Workdir) instruction() {}
