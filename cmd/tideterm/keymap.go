package main

import (
	"github.com/gotk3/gotk3/gdk"
)

// translateKeyEvent turns a GTK key-press event into the bytes written
// to the PTY, a trimmed adaptation of the teacher's gtk/widget.go
// onKeyPress: the same special-key/cursor-key/modifier dispatch, minus
// its kitty-protocol extended-modifier encoding and hardware-keycode
// Wine/Windows fallbacks, which have no place in a Wayland-only shell.
func translateKeyEvent(ev *gdk.Event) []byte {
	key := gdk.EventKeyNewFromEvent(ev)
	keyval := key.KeyVal()
	state := key.State()

	if isModifierKey(keyval) {
		return nil
	}

	hasCtrl := state&uint(gdk.CONTROL_MASK) != 0
	hasAlt := state&uint(gdk.MOD1_MASK) != 0

	switch keyval {
	case gdk.KEY_Return, gdk.KEY_KP_Enter:
		return []byte{'\r'}
	case gdk.KEY_BackSpace:
		if hasCtrl {
			return []byte{0x08}
		}
		if hasAlt {
			return []byte{0x1b, 0x7f}
		}
		return []byte{0x7f}
	case gdk.KEY_Tab:
		return []byte{'\t'}
	case gdk.KEY_ISO_Left_Tab:
		return []byte{0x1b, '[', 'Z'}
	case gdk.KEY_Escape:
		return []byte{0x1b}
	case gdk.KEY_Up, gdk.KEY_KP_Up:
		return []byte{0x1b, '[', 'A'}
	case gdk.KEY_Down, gdk.KEY_KP_Down:
		return []byte{0x1b, '[', 'B'}
	case gdk.KEY_Right, gdk.KEY_KP_Right:
		return []byte{0x1b, '[', 'C'}
	case gdk.KEY_Left, gdk.KEY_KP_Left:
		return []byte{0x1b, '[', 'D'}
	case gdk.KEY_Home, gdk.KEY_KP_Home:
		return []byte{0x1b, '[', 'H'}
	case gdk.KEY_End, gdk.KEY_KP_End:
		return []byte{0x1b, '[', 'F'}
	case gdk.KEY_Page_Up, gdk.KEY_KP_Page_Up:
		return []byte{0x1b, '[', '5', '~'}
	case gdk.KEY_Page_Down, gdk.KEY_KP_Page_Down:
		return []byte{0x1b, '[', '6', '~'}
	case gdk.KEY_Insert, gdk.KEY_KP_Insert:
		return []byte{0x1b, '[', '2', '~'}
	case gdk.KEY_Delete, gdk.KEY_KP_Delete:
		return []byte{0x1b, '[', '3', '~'}
	}

	r := rune(gdk.KeyvalToUnicode(keyval))
	if r == 0 {
		return nil
	}

	if hasCtrl && !hasAlt {
		if c := ctrlCode(r); c >= 0 {
			return []byte{byte(c)}
		}
	}

	data := []byte(string(r))
	if hasAlt {
		data = append([]byte{0x1b}, data...)
	}
	return data
}

// ctrlCode maps a letter or a handful of punctuation keys to the
// control byte Ctrl produces for it (Ctrl+A through Ctrl+Z -> 0x01-0x1a,
// plus the traditional Ctrl+[, Ctrl+\, Ctrl+], Ctrl+^, Ctrl+_). Returns
// -1 for runes with no traditional control mapping.
func ctrlCode(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 1
	case r == '[':
		return 0x1b
	case r == '\\':
		return 0x1c
	case r == ']':
		return 0x1d
	case r == '^':
		return 0x1e
	case r == '_':
		return 0x1f
	}
	return -1
}

func isModifierKey(keyval uint) bool {
	switch keyval {
	case gdk.KEY_Shift_L, gdk.KEY_Shift_R,
		gdk.KEY_Control_L, gdk.KEY_Control_R,
		gdk.KEY_Alt_L, gdk.KEY_Alt_R,
		gdk.KEY_Meta_L, gdk.KEY_Meta_R,
		gdk.KEY_Super_L, gdk.KEY_Super_R,
		gdk.KEY_Caps_Lock, gdk.KEY_Num_Lock, gdk.KEY_Scroll_Lock:
		return true
	}
	return false
}
