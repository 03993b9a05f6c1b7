package scope

import (
	"context"
	"testing"

	"fieldservice-srv/internal/model"
)

func TestScopeContextRoundTrip(t *testing.T) {
	want := model.Scope{
		UserID:   "user-1",
		Username: "dispatcher",
		Role:     "ADMIN",
		TenantID: "tenant-1",
	}

	ctx := SetScopeToContext(context.Background(), want)
	if got := GetScopeFromContext(ctx); got != want {
		t.Errorf("GetScopeFromContext() = %+v, want %+v", got, want)
	}
}

func TestGetScopeFromContext_Missing(t *testing.T) {
	if got := GetScopeFromContext(context.Background()); got != (model.Scope{}) {
		t.Errorf("GetScopeFromContext() = %+v, want zero scope", got)
	}
}
