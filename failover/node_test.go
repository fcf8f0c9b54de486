package failover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := map[string]struct {
		url     string
		want    Node
		wantErr bool
	}{
		"Http": {
			url:  "http://10.0.0.1:2380",
			want: Node{Host: "10.0.0.1", Port: 2380},
		},
		"Https": {
			url:  "https://etcd-0.internal:2380",
			want: Node{Host: "etcd-0.internal", Port: 2380},
		},
		"IPv6": {
			url:  "http://[::1]:2379",
			want: Node{Host: "::1", Port: 2379},
		},
		"NoScheme": {
			url:     "10.0.0.1:2380",
			wantErr: true,
		},
		"NoPort": {
			url:     "http://10.0.0.1",
			wantErr: true,
		},
		"BadPort": {
			url:     "http://10.0.0.1:99999",
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			node, err := ParseURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, node)
		})
	}
}

func TestNode_Addr(t *testing.T) {
	require.Equal(t, "10.0.0.1:2379", Node{Host: "10.0.0.1", Port: 2379}.Addr())
	require.Equal(t, "[::1]:2379", Node{Host: "::1", Port: 2379}.String())
}
