// Package memory is the in-memory backend: every entity kind lives in a
// seeded slice guarded by one lock. List operations filter first, then slice
// through listview.Paginate, so a page is always consistent with
// "apply filters, then slice".
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/godcandidate/warehouse-management-app/internal/session"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/auth"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/dashboard"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/inventory"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/order"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/report"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/shipment"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/supplier"
)

type Store struct {
	mu sync.RWMutex

	users      []auth.User
	categories []inventory.Category
	items      []inventory.Item
	suppliers  []supplier.Supplier
	orders     []order.Order
	shipments  []shipment.Shipment
	reports    []report.Report
	activities []dashboard.Activity

	now   func() time.Time
	newID func() string
}

func New() *Store {
	return &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// record appends an activity entry attributed to the session actor, or
// "system" when the mutation has no session. Callers must hold s.mu.
func (s *Store) record(ctx context.Context, typ, action, description string) {
	userID, userName := "", "system"
	if sess, ok := session.FromContext(ctx); ok {
		userID = sess.UserID
		userName = sess.Name
	}
	s.activities = append(s.activities, dashboard.Activity{
		ID:          s.newID(),
		Type:        typ,
		Action:      action,
		Description: description,
		Timestamp:   s.now(),
		UserID:      userID,
		UserName:    userName,
	})
}
