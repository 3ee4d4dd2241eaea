package gazescreens

import (
	"fmt"
	"os"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/pkg/errors"
)

// Scene scripts are zygomys Lisp with four builtins:
//
//	(screen "front" :width 3 :height 2 :pitch 0 :yaw 0 :shift (vec3 0 0 -2.5) :radius 4)
//	(vec3 x y z)
//	(locate "front" px py dtheta dphi)
//	(angle "front" x1 y1 "left" x2 y2)
//
// Evaluation only records configuration; screens are built afterwards
// through the same path as JSON configs.

// kwPrefix marks keyword arguments rewritten by preprocessScript.
const kwPrefix = "__kw_"

// sexpVec3 carries a Vec3 between builtins.
type sexpVec3 struct {
	vec Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec[0], v.vec[1], v.vec[2])
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// preprocessScript turns :keyword into the string "__kw_keyword" and
// ; comments into // comments, leaving string literals alone.
func preprocessScript(src string) string {
	var b strings.Builder
	b.Grow(len(src) + len(src)/4)
	inStr := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case inStr:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(src) {
				i++
				b.WriteByte(src[i])
			} else if c == '"' {
				inStr = false
			}
		case c == '"':
			inStr = true
			b.WriteByte(c)
		case c == ';':
			b.WriteString("//")
			for i+1 < len(src) && src[i+1] == ';' {
				i++
			}
		case c == ':' && i+1 < len(src) && isLetter(src[i+1]):
			j := i + 1
			for j < len(src) && isKWChar(src[j]) {
				j++
			}
			b.WriteString(`"` + kwPrefix + src[i+1:j] + `"`)
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// kwArgs holds a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func parseArgs(args []zygo.Sexp) kwArgs {
	out := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		if str, ok := args[i].(*zygo.SexpStr); ok && strings.HasPrefix(str.S, kwPrefix) {
			name := str.S[len(kwPrefix):]
			if i+1 < len(args) {
				out.kw[name] = args[i+1]
				i++
			} else {
				out.kw[name] = zygo.SexpNull
			}
			continue
		}
		out.positional = append(out.positional, args[i])
	}
	return out
}

func toFloat64(s zygo.Sexp) (Real, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return Real(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func toVec3(s zygo.Sexp) (Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

func registerBuiltins(env *zygo.Zlisp, cfg *Config) {
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var v Vec3
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %c: %w", "xyz"[i], err)
			}
			v[i] = f
		}
		return &sexpVec3{vec: v}, nil
	})

	env.AddFunction("screen", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var sc ScreenCfg
		if len(pa.positional) > 0 {
			n, err := toString(pa.positional[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("screen: name: %w", err)
			}
			sc.Name = n
		}
		nums := map[string]*Real{"width": &sc.Width, "height": &sc.Height, "pitch": &sc.Pitch, "yaw": &sc.Yaw}
		for key, dst := range nums {
			v, ok := pa.kw[key]
			if !ok {
				continue
			}
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("screen: %s: %w", key, err)
			}
			*dst = f
		}
		if v, ok := pa.kw["shift"]; ok {
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("screen: shift: %w", err)
			}
			sc.Shift = vec
		}
		if v, ok := pa.kw["radius"]; ok {
			r, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("screen: radius: %w", err)
			}
			sc.Radius = &r
		}
		cfg.Screens = append(cfg.Screens, sc)
		return zygo.SexpNull, nil
	})

	env.AddFunction("locate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 5 {
			return zygo.SexpNull, fmt.Errorf("locate requires a screen name and 4 numbers, got %d arguments", len(args))
		}
		screen, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("locate: screen: %w", err)
		}
		var nums [4]Real
		for i, a := range args[1:] {
			if nums[i], err = toFloat64(a); err != nil {
				return zygo.SexpNull, fmt.Errorf("locate: argument %d: %w", i+2, err)
			}
		}
		cfg.Queries = append(cfg.Queries, QueryCfg{
			Screen: screen,
			Pixel:  Pixel{nums[0], nums[1]},
			Offset: AngleOffset{nums[2], nums[3]},
		})
		return zygo.SexpNull, nil
	})

	env.AddFunction("angle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 6 {
			return zygo.SexpNull, fmt.Errorf("angle requires two (screen x y) triples, got %d arguments", len(args))
		}
		var refs [2]PixelRef
		for k := range refs {
			base := 3 * k
			screen, err := toString(args[base])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("angle: screen %d: %w", k+1, err)
			}
			x, err := toFloat64(args[base+1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("angle: argument %d: %w", base+2, err)
			}
			y, err := toFloat64(args[base+2])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("angle: argument %d: %w", base+3, err)
			}
			refs[k] = PixelRef{Screen: screen, Pixel: Pixel{x, y}}
		}
		cfg.Angles = append(cfg.Angles, AngleCfg{From: refs[0], To: refs[1]})
		return zygo.SexpNull, nil
	})
}

// EvalScript runs a scene script in a fresh sandbox and returns the
// configuration it declared, with defaults applied.
func EvalScript(source string) (*Config, error) {
	cfg := &Config{}
	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env, cfg)

	if err := env.LoadString(preprocessScript(source)); err != nil {
		return nil, errors.Wrapf(ErrConfig, "scene script: %v", err)
	}
	if _, err := env.Run(); err != nil {
		return nil, errors.Wrapf(ErrConfig, "scene script: %v", err)
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadScript(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := EvalScript(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "script %s", path)
	}
	DebugLog("Loaded scene script from %s: %d screens, %d queries, %d angles", path, len(cfg.Screens), len(cfg.Queries), len(cfg.Angles))
	return cfg, nil
}
