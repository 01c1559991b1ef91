package goquery_test

import (
	"testing"

	"github.com/fwojciec/newsprint/goquery"
	"github.com/stretchr/testify/assert"
)

func TestMetaRefresher_MetaRefreshURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "quoted url",
			html: `<html><head><meta http-equiv="Refresh" content="0; URL='https://example.com/next'"></head></html>`,
			want: "https://example.com/next",
		},
		{
			name: "relative url",
			html: `<meta http-equiv="refresh" content="5;url=/moved">`,
			want: "/moved",
		},
		{
			name: "delay only",
			html: `<meta http-equiv="refresh" content="30">`,
			want: "",
		},
		{
			name: "no directive",
			html: `<html><head><meta charset="utf-8"></head></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, goquery.NewMetaRefresher().MetaRefreshURL(tt.html))
		})
	}
}
