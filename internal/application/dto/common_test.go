package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kurbonovm/mktekhub-sub000/internal/application/dto"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	tests := []struct {
		name string
		in   dto.PageRequest
		want dto.PageRequest
	}{
		{"vacía", dto.PageRequest{}, dto.PageRequest{Limit: 20}},
		{"respeta valores válidos", dto.PageRequest{Limit: 5, Offset: 10}, dto.PageRequest{Limit: 5, Offset: 10}},
		{"acota limit", dto.PageRequest{Limit: 500}, dto.PageRequest{Limit: 100}},
		{"offset negativo", dto.PageRequest{Limit: -1, Offset: -3}, dto.PageRequest{Limit: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := tt.in
			page.DefaultPage()
			assert.Equal(t, tt.want, page)
		})
	}
}
