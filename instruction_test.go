package dockerfile

import (
	"errors"
	"testing"
)

func TestInstructionRendering(t *testing.T) {
	tests := []struct {
		inst Instruction
		kind Kind
		want string
	}{
		{Add("/file ./file"), KindAdd, "ADD /file ./file\n"},
		{Arg("VAL=testing"), KindArg, "ARG VAL=testing\n"},
		{Cmd("echo 'Hello, world.'"), KindCmd, "CMD echo 'Hello, world.'\n"},
		{Copy("/static ./static"), KindCopy, "COPY /static ./static\n"},
		{Directive("escape=`"), KindDirective, "# escape=`\n"},
		{Entrypoint("echo"), KindEntrypoint, "ENTRYPOINT echo\n"},
		{Env("VAL=test"), KindEnv, "ENV VAL=test\n"},
		{Expose("80"), KindExpose, "EXPOSE 80\n"},
		{From("rust:1.31-slim as other"), KindFrom, "FROM rust:1.31-slim as other\n"},
		{Healthcheck("CMD pgrep 1"), KindHealthcheck, "HEALTHCHECK CMD pgrep 1\n"},
		{Label("maintainer='Anthony J Dodd'"), KindLabel, "LABEL maintainer='Anthony J Dodd'\n"},
		{Onbuild("RUN echo 'ehlo'"), KindOnbuild, "ONBUILD RUN echo 'ehlo'\n"},
		{Run("apt-get update -yy"), KindRun, "RUN apt-get update -yy\n"},
		{Shell(`["/bin/sh", "-c"]`), KindShell, "SHELL [\"/bin/sh\", \"-c\"]\n"},
		{StopSignal("SIGKILL"), KindStopSignal, "STOPSIGNAL SIGKILL\n"},
		{User("root"), KindUser, "USER root\n"},
		{Volume(`["/data"]`), KindVolume, "VOLUME [\"/data\"]\n"},
		{Workdir("/app"), KindWorkdir, "WORKDIR /app\n"},
	}

	if len(tests) != len(Kinds()) {
		t.Fatalf("test table covers %d kinds, catalog has %d", len(tests), len(Kinds()))
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.inst.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
			if got := tc.inst.Kind(); got != tc.kind {
				t.Errorf("Kind() = %v, want %v", got, tc.kind)
			}
		})
	}
}

func TestPayloadIsVerbatim(t *testing.T) {
	// Malformed arguments are not checked or escaped.
	payload := `not-a-port "unbalanced \n`
	if got, want := Expose(payload).String(), "EXPOSE "+payload+"\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := Run("").String(); got != "RUN \n" {
		t.Errorf("empty payload = %q, want %q", got, "RUN \n")
	}
	if got := Copy(payload).Value(); got != payload {
		t.Errorf("Value() = %q, want %q", got, payload)
	}
}

func TestInstructionEquality(t *testing.T) {
	var a, b Instruction = Copy("x y"), Copy("x y")
	if a != b {
		t.Error("instructions of the same kind and payload should be equal")
	}

	var c Instruction = Add("x y")
	if a == c {
		t.Error("COPY and ADD with the same payload should not be equal")
	}

	var d, e Instruction = Run("a"), Run("b")
	if d == e {
		t.Error("different payloads should not be equal")
	}
}

func TestKindString(t *testing.T) {
	if got := KindHealthcheck.String(); got != "HEALTHCHECK" {
		t.Errorf("KindHealthcheck = %q", got)
	}
	if got := Kind(-1).String(); got != "UNKNOWN" {
		t.Errorf("Kind(-1) = %q, want UNKNOWN", got)
	}
	if got := numKinds.String(); got != "UNKNOWN" {
		t.Errorf("numKinds = %q, want UNKNOWN", got)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		keyword string
		want    Kind
		wantErr bool
	}{
		{keyword: "FROM", want: KindFrom},
		{keyword: "copy", want: KindCopy},
		{keyword: " StopSignal ", want: KindStopSignal},
		{keyword: "#", want: KindDirective},
		{keyword: "directive", want: KindDirective},
		{keyword: "workdir", want: KindWorkdir},
		{keyword: "MAINTAINER", wantErr: true},
		{keyword: "", wantErr: true},
		{keyword: "UNKNOWN", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.keyword, func(t *testing.T) {
			got, err := ParseKind(tc.keyword)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownKeyword) {
					t.Fatalf("ParseKind(%q) error = %v, want ErrUnknownKeyword", tc.keyword, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) failed: %v", tc.keyword, err)
			}
			if got != tc.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tc.keyword, got, tc.want)
			}
		})
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", k, err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k, got, k)
		}
	}
}

func TestNew(t *testing.T) {
	for _, k := range Kinds() {
		inst := New(k, "payload")
		if inst == nil {
			t.Fatalf("New(%v) returned nil", k)
		}
		if inst.Kind() != k {
			t.Errorf("New(%v).Kind() = %v", k, inst.Kind())
		}
		if inst.Value() != "payload" {
			t.Errorf("New(%v).Value() = %q", k, inst.Value())
		}
	}

	if inst := New(numKinds, "x"); inst != nil {
		t.Errorf("New(unknown) = %v, want nil", inst)
	}
}
