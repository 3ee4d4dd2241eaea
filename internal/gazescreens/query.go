package gazescreens

import (
	"strconv"

	"github.com/google/shlex"
	"github.com/pkg/errors"
)

// Query line commands.
const (
	cmdLocate = "locate"
	cmdAngle  = "angle"
)

// splitLine tokenizes a query line and checks its command. Blank lines
// and # comments give no fields.
func splitLine(line string) ([]string, error) {
	fields, err := shlex.Split(line)
	if err != nil {
		return nil, errors.Wrapf(ErrConfig, "query %q: %v", line, err)
	}
	if len(fields) > 0 && fields[0] != cmdLocate && fields[0] != cmdAngle {
		return nil, errors.Wrapf(ErrConfig, "query %q: unknown command %q", line, fields[0])
	}
	return fields, nil
}

func parseReals(line string, fields []string) ([]Real, error) {
	out := make([]Real, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrConfig, "query %q: %v", line, err)
		}
		out[i] = v
	}
	return out, nil
}

// ParseQueryLine parses
//
//	locate <screen> <px> <py> <dtheta> <dphi>
//
// with shell quoting for screen names. Blank lines, # comments and angle
// lines yield ok=false.
func ParseQueryLine(line string) (q QueryCfg, ok bool, err error) {
	fields, err := splitLine(line)
	if err != nil || len(fields) == 0 || fields[0] != cmdLocate {
		return QueryCfg{}, false, err
	}
	if len(fields) != 6 {
		return QueryCfg{}, false, errors.Wrapf(ErrConfig, "query %q: want locate <screen> <px> <py> <dtheta> <dphi>", line)
	}
	nums, err := parseReals(line, fields[2:])
	if err != nil {
		return QueryCfg{}, false, err
	}
	return QueryCfg{
		Screen: fields[1],
		Pixel:  Pixel{nums[0], nums[1]},
		Offset: AngleOffset{nums[2], nums[3]},
	}, true, nil
}

// ParseAngleLine parses
//
//	angle <screen1> <x1> <y1> <screen2> <x2> <y2>
//
// Blank lines, # comments and locate lines yield ok=false.
func ParseAngleLine(line string) (a AngleCfg, ok bool, err error) {
	fields, err := splitLine(line)
	if err != nil || len(fields) == 0 || fields[0] != cmdAngle {
		return AngleCfg{}, false, err
	}
	if len(fields) != 7 {
		return AngleCfg{}, false, errors.Wrapf(ErrConfig, "query %q: want angle <screen1> <x1> <y1> <screen2> <x2> <y2>", line)
	}
	from, err := parseReals(line, fields[2:4])
	if err != nil {
		return AngleCfg{}, false, err
	}
	to, err := parseReals(line, fields[5:7])
	if err != nil {
		return AngleCfg{}, false, err
	}
	return AngleCfg{
		From: PixelRef{Screen: fields[1], Pixel: Pixel{from[0], from[1]}},
		To:   PixelRef{Screen: fields[4], Pixel: Pixel{to[0], to[1]}},
	}, true, nil
}
