// Package hook tests tolerant payload parsing.
// Related: internal/hook/event.go
package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw     string
		want    Event
		wantErr bool
	}{
		"full payload": {
			raw: `{"hook_event_name":"Stop","notification_type":"","cwd":"/home/x/p","session_id":"s1","permission_mode":"default"}`,
			want: Event{
				Name:           "Stop",
				CWD:            "/home/x/p",
				SessionID:      "s1",
				PermissionMode: "default",
			},
		},
		"missing fields decode to zero values": {
			raw:  `{"hook_event_name":"SessionStart"}`,
			want: Event{Name: "SessionStart"},
		},
		"extra fields are ignored": {
			raw:  `{"hook_event_name":"Stop","transcript_path":"/tmp/t","brand_new_field":42}`,
			want: Event{Name: "Stop"},
		},
		"empty object": {
			raw:  `{}`,
			want: Event{},
		},
		"malformed payload errors with zero event": {
			raw:     `{"hook_event_name":`,
			wantErr: true,
		},
		"non-object payload errors": {
			raw:     `"just a string"`,
			wantErr: true,
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ev, err := Parse([]byte(tc.raw))
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, Event{}, ev)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ev)
		})
	}
}
