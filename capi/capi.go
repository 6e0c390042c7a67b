package main

/*
#include <stdint.h>

typedef struct {
	float min[3];
	float max[3];
} spz_bbox_t;
*/
import "C"

import (
	"errors"
	"os"
	"unsafe"

	"github.com/dhawkins/spz-go/spz"
)

// spz_load opens path, decodes the full splat, and converts it to target_coord
// (spz.Unspecified leaves it in the on-disk RUB system). On success *out_handle
// is set and Success is returned; on failure *out_handle is left untouched and
// the caller should consult spz_last_error(token).
//
//export spz_load
func spz_load(token C.ulonglong, path *C.char, targetCoord C.uint8_t, outHandle *C.ulonglong) C.int {
	t := CallerToken(token)
	clearLastError(t)

	if path == nil || outHandle == nil {
		setLastError(t, "spz_load: null pointer argument")
		return C.int(NullPointer)
	}

	s, err := spz.Load(C.GoString(path), spz.CoordinateSystem(targetCoord))
	if err != nil {
		setLastError(t, err.Error())
		return C.int(ioOrArgStatus(err))
	}

	*outHandle = C.ulonglong(registerSplat(s))
	return C.int(Success)
}

// spz_save converts the splat behind handle from from_coord to the on-disk
// RUB system (a no-op if from_coord is Unspecified) and writes path.
//
//export spz_save
func spz_save(token C.ulonglong, handle C.ulonglong, path *C.char, fromCoord C.uint8_t) C.int {
	t := CallerToken(token)
	clearLastError(t)

	if path == nil {
		setLastError(t, "spz_save: null pointer argument")
		return C.int(NullPointer)
	}
	s := lookupSplat(Handle(handle))
	if s == nil {
		setLastError(t, "spz_save: unknown or freed handle")
		return C.int(InvalidArgument)
	}

	if err := s.Save(C.GoString(path), spz.CoordinateSystem(fromCoord)); err != nil {
		setLastError(t, err.Error())
		return C.int(ioOrArgStatus(err))
	}
	return C.int(Success)
}

// spz_header_from_file reads only the 16-byte header of path.
//
//export spz_header_from_file
func spz_header_from_file(token C.ulonglong, path *C.char, outHandle *C.ulonglong) C.int {
	t := CallerToken(token)
	clearLastError(t)

	if path == nil || outHandle == nil {
		setLastError(t, "spz_header_from_file: null pointer argument")
		return C.int(NullPointer)
	}

	h, err := spz.HeaderFromFile(C.GoString(path))
	if err != nil {
		setLastError(t, err.Error())
		return C.int(ioOrArgStatus(err))
	}

	*outHandle = C.ulonglong(registerHeader(h))
	return C.int(Success)
}

// spz_splat_free releases a handle returned by spz_load. Freeing an
// unknown or already-freed handle is a no-op.
//
//export spz_splat_free
func spz_splat_free(handle C.ulonglong) {
	freeSplat(Handle(handle))
}

// spz_header_free releases a handle returned by spz_header_from_file.
//
//export spz_header_free
func spz_header_free(handle C.ulonglong) {
	freeHeader(Handle(handle))
}

// spz_convert_coordinates applies an in-place coordinate transform to the
// splat behind handle.
//
//export spz_convert_coordinates
func spz_convert_coordinates(token C.ulonglong, handle C.ulonglong, from, to C.uint8_t) C.int {
	t := CallerToken(token)
	clearLastError(t)

	s := lookupSplat(Handle(handle))
	if s == nil {
		setLastError(t, "spz_convert_coordinates: unknown or freed handle")
		return C.int(InvalidArgument)
	}
	s.ConvertCoordinates(spz.CoordinateSystem(from), spz.CoordinateSystem(to))
	return C.int(Success)
}

// spz_bbox fills out with the bounding box of the splat behind handle.
//
//export spz_bbox
func spz_bbox(token C.ulonglong, handle C.ulonglong, out *C.spz_bbox_t) C.int {
	t := CallerToken(token)
	clearLastError(t)

	if out == nil {
		setLastError(t, "spz_bbox: null pointer argument")
		return C.int(NullPointer)
	}
	s := lookupSplat(Handle(handle))
	if s == nil {
		setLastError(t, "spz_bbox: unknown or freed handle")
		return C.int(InvalidArgument)
	}

	bbox := s.BBox()
	for i := 0; i < 3; i++ {
		out.min[i] = C.float(bbox.Min[i])
		out.max[i] = C.float(bbox.Max[i])
	}
	return C.int(Success)
}

// spz_median_volume returns the median ellipsoid volume of the splat
// behind handle.
//
//export spz_median_volume
func spz_median_volume(token C.ulonglong, handle C.ulonglong, out *C.float) C.int {
	t := CallerToken(token)
	clearLastError(t)

	if out == nil {
		setLastError(t, "spz_median_volume: null pointer argument")
		return C.int(NullPointer)
	}
	s := lookupSplat(Handle(handle))
	if s == nil {
		setLastError(t, "spz_median_volume: unknown or freed handle")
		return C.int(InvalidArgument)
	}
	*out = C.float(s.MedianVolume())
	return C.int(Success)
}

// spz_check_sizes reports whether the splat behind handle still has
// consistent attribute array lengths.
//
//export spz_check_sizes
func spz_check_sizes(token C.ulonglong, handle C.ulonglong, out *C.int) C.int {
	t := CallerToken(token)
	clearLastError(t)

	if out == nil {
		setLastError(t, "spz_check_sizes: null pointer argument")
		return C.int(NullPointer)
	}
	s := lookupSplat(Handle(handle))
	if s == nil {
		setLastError(t, "spz_check_sizes: unknown or freed handle")
		return C.int(InvalidArgument)
	}
	if s.CheckSizes() {
		*out = 1
	} else {
		*out = 0
	}
	return C.int(Success)
}

// spz_splat_positions returns an interior pointer to the splat's flattened
// position array plus its element count. The pointer is valid until the
// next mutating call (spz_convert_coordinates, spz_splat_free) on handle;
// the caller must not free it.
//
//export spz_splat_positions
func spz_splat_positions(token C.ulonglong, handle C.ulonglong, outLen *C.uint64_t) *C.float {
	t := CallerToken(token)
	clearLastError(t)

	s := lookupSplat(Handle(handle))
	if s == nil {
		setLastError(t, "spz_splat_positions: unknown or freed handle")
		if outLen != nil {
			*outLen = 0
		}
		return nil
	}
	positions := s.Positions()
	if outLen != nil {
		*outLen = C.uint64_t(len(positions))
	}
	if len(positions) == 0 {
		return nil
	}
	return (*C.float)(unsafe.Pointer(&positions[0]))
}

// spz_last_error returns a C string holding the most recent error recorded
// for token, or an empty string if the last call on token succeeded. Each
// call allocates a new string with C.CString; the library keeps no
// reference to it and never frees it, so the caller releases it with free().
//
//export spz_last_error
func spz_last_error(token C.ulonglong) *C.char {
	return C.CString(LastError(CallerToken(token)))
}

// ioOrArgStatus narrows a spz error down to the IoError/InvalidArgument
// split in the status-code enum; anything that isn't recognizably an I/O
// failure is reported as an invalid argument.
func ioOrArgStatus(err error) StatusCode {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return IoError
	}
	return InvalidArgument
}
