// Package services orchestrates reads and writes against the remote user
// directory while keeping the page cache visually consistent with user
// intent: mutations apply optimistically before the network call resolves
// and roll back to the captured snapshot on failure.
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/userdesk-dev/userdesk/internal/client/api"
	"github.com/userdesk-dev/userdesk/internal/client/cache"
	"github.com/userdesk-dev/userdesk/internal/client/models"
	"github.com/userdesk-dev/userdesk/internal/common"
	"github.com/userdesk-dev/userdesk/internal/logging"
)

// Recorder receives activity entries at each mutation lifecycle stage.
// Appends are best-effort: implementations must never fail the mutation.
type Recorder interface {
	AddActivity(entry models.ActivityEntry)
}

// UserService is the read/mutation coordinator for the user directory.
//
// Each mutation is an explicit Pending(snapshot) -> {Confirmed, RolledBack}
// machine: the rollback snapshot is captured at entry, owned only by that
// mutation, and discarded once it settles. Concurrent mutations on the same
// page key each capture their own snapshot; last writer wins.
type UserService struct {
	dir      api.Directory
	cache    *cache.PageCache
	recorder Recorder
	log      logging.Logger

	group singleflight.Group

	// Session-scoped monotonic counter for temporary ids, seeded with the
	// wall clock so temp ids never collide with the fixture's small ids.
	tempID atomic.Int64
}

// NewUserService wires the coordinator. The recorder may be nil, in which
// case lifecycle entries are dropped.
func NewUserService(dir api.Directory, c *cache.PageCache, rec Recorder, log logging.Logger) *UserService {
	s := &UserService{dir: dir, cache: c, recorder: rec, log: log}
	s.tempID.Store(time.Now().UnixMilli())
	return s
}

// nextTempID allocates a temporary id for an optimistic create.
func (s *UserService) nextTempID() int {
	return int(s.tempID.Add(1))
}

func (s *UserService) record(entry models.ActivityEntry) {
	if s.recorder == nil {
		return
	}
	s.recorder.AddActivity(entry)
}

// List returns the page snapshot for (page, perPage). A fresh cache hit is
// served as-is; a stale hit is served immediately while a background refetch
// revalidates it; a miss fetches synchronously. Duplicate refetches for the
// same key are collapsed.
func (s *UserService) List(ctx context.Context, page, perPage int) (models.PagedUsers, error) {
	key := cache.Key{Page: page, PerPage: perPage}

	snap, ok, fresh := s.cache.Read(key)
	if ok && fresh {
		return snap, nil
	}
	if ok {
		// Stale-while-revalidate: hand back what we have and refresh
		// behind the caller's back.
		go func() {
			bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
			defer cancel()
			if _, err := s.fetchPage(bg, key); err != nil {
				s.log.Warn(bg, "background refetch failed", "page", page, "error", err)
			}
		}()
		return snap, nil
	}

	return s.fetchPage(ctx, key)
}

// fetchPage pulls the full collection, slices the requested page and commits
// it unless a mutation superseded the fetch in the meantime.
func (s *UserService) fetchPage(ctx context.Context, key cache.Key) (models.PagedUsers, error) {
	gen := s.cache.Generation(key)

	v, err, _ := s.group.Do(flightKey(key), func() (any, error) {
		all, err := s.dir.List(ctx)
		if err != nil {
			return models.PagedUsers{}, err
		}
		return models.Page(all, key.Page, key.PerPage), nil
	})
	if err != nil {
		return models.PagedUsers{}, fmt.Errorf("loading users: %w", err)
	}

	snap := v.(models.PagedUsers)
	if !s.cache.CompareAndWrite(key, gen, snap) {
		// A mutation rewrote this key while we were on the wire; its view
		// of the world wins over our response.
		cur, ok, _ := s.cache.Read(key)
		if ok {
			return cur, nil
		}
	}
	return snap, nil
}

func flightKey(key cache.Key) string {
	return strconv.Itoa(key.Page) + ":" + strconv.Itoa(key.PerPage)
}

// Get fetches a single record straight from the directory.
func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user id %d", common.ErrValidation, id)
	}
	return s.dir.Get(ctx, id)
}

// Delete removes the record optimistically and settles after the network
// call. Failures roll the page back to the captured snapshot and are fully
// absorbed here: the caller observes only cache and activity-log state.
func (s *UserService) Delete(ctx context.Context, page, perPage, id int) {
	key := cache.Key{Page: page, PerPage: perPage}

	// Supersede any fetch in flight for this key so a stale response
	// cannot overwrite the optimistic write below.
	s.cache.Bump(key)

	prev, had, _ := s.cache.Read(key)

	name := "id:" + strconv.Itoa(id)
	if had {
		for _, u := range prev.Items {
			if u.ID == id {
				name = u.Name
				break
			}
		}

		next := prev.Clone()
		items := next.Items[:0]
		for _, u := range next.Items {
			if u.ID != id {
				items = append(items, u)
			}
		}
		next.Items = items
		if next.Total > 0 {
			next.Total--
		}
		s.cache.Write(key, next)
	}

	s.record(models.ActivityEntry{
		Type:    models.ActivityUserDeleted,
		Message: "Deleted user " + name,
		Meta:    map[string]any{"id": id},
	})

	if err := s.dir.Delete(ctx, id); err != nil {
		if had {
			s.cache.Write(key, prev)
		}
		s.record(models.ActivityEntry{
			Type:    models.ActivityUserDeleteFailed,
			Message: "Failed deleting user " + name,
			Meta:    map[string]any{"id": id, "error": err.Error()},
		})
		s.log.Error(ctx, "delete failed, rolled back", "id", id, "error", err)
		return
	}

	s.record(models.ActivityEntry{
		Type:    models.ActivityUserDeleteConfirmed,
		Message: "Confirmed deletion of " + name,
		Meta:    map[string]any{"id": id},
	})
}

// Save creates (form.ID == 0) or updates (otherwise) a record, splicing an
// optimistic version into the page first. On success the optimistic record
// is replaced with server truth; on failure the page rolls back and the
// error is returned for inline display.
func (s *UserService) Save(ctx context.Context, page, perPage int, form models.UserForm) (*models.User, error) {
	if err := validate(form); err != nil {
		// Validation failures never reach the network or the activity log.
		return nil, err
	}

	key := cache.Key{Page: page, PerPage: perPage}
	s.cache.Bump(key)

	prev, had, _ := s.cache.Read(key)

	isUpdate := form.ID != 0
	tempID := form.ID
	if !isUpdate {
		tempID = s.nextTempID()
	}
	optimistic := form.Record(tempID)

	next := s.splice(prev, had, optimistic, isUpdate, perPage)
	s.cache.Write(key, next)

	entryType, message := models.ActivityUserAdded, "Created user "+form.Name
	if isUpdate {
		entryType, message = models.ActivityUserEdited, "Edited user "+form.Name
	}
	s.record(models.ActivityEntry{
		Type:    entryType,
		Message: message,
		Meta:    map[string]any{"tempId": tempID, "email": form.Email},
	})

	saved, err := s.persist(ctx, form)
	if err != nil {
		if had {
			s.cache.Write(key, prev)
		} else {
			s.cache.Invalidate(key)
		}
		failType := models.ActivityUserAddFailed
		verb := "Create"
		if isUpdate {
			failType = models.ActivityUserEditFailed
			verb = "Edit"
		}
		s.record(models.ActivityEntry{
			Type:    failType,
			Message: verb + " failed for " + form.Name,
			Meta:    map[string]any{"error": err.Error()},
		})
		s.log.Error(ctx, "save failed, rolled back", "name", form.Name, "error", err)
		return nil, err
	}

	// Reconcile: swap the optimistic record for server truth, matched by
	// the id we spliced in.
	cur, ok, _ := s.cache.Read(key)
	if ok {
		for i := range cur.Items {
			if cur.Items[i].ID == tempID {
				cur.Items[i] = *saved
			}
		}
		s.cache.Write(key, cur)
	}

	confirmType, confirmMsg := models.ActivityUserAddConfirmed, "Confirmed create: "+saved.Name
	if isUpdate {
		confirmType, confirmMsg = models.ActivityUserEditConfirmed, "Confirmed edit: "+saved.Name
	}
	s.record(models.ActivityEntry{
		Type:    confirmType,
		Message: confirmMsg,
		Meta:    map[string]any{"id": saved.ID, "email": saved.Email},
	})

	return saved, nil
}

func (s *UserService) persist(ctx context.Context, form models.UserForm) (*models.User, error) {
	if form.ID != 0 {
		return s.dir.Update(ctx, form.ID, form)
	}
	return s.dir.Create(ctx, form)
}

// splice applies the optimistic record to the previous snapshot: updates
// replace in place preserving order, creates prepend and truncate to the
// page size. With no previous snapshot a minimal one-item page is
// synthesized.
func (s *UserService) splice(prev models.PagedUsers, had bool, optimistic models.User, isUpdate bool, perPage int) models.PagedUsers {
	if !had {
		return models.PagedUsers{
			Items:      []models.User{optimistic},
			Total:      1,
			TotalPages: 1,
		}
	}

	next := prev.Clone()
	if isUpdate {
		for i := range next.Items {
			if next.Items[i].ID == optimistic.ID {
				// Keep fields the form does not carry.
				merged := optimistic
				merged.Address = next.Items[i].Address
				merged.Website = next.Items[i].Website
				next.Items[i] = merged
			}
		}
		return next
	}

	next.Items = append([]models.User{optimistic}, next.Items...)
	if len(next.Items) > perPage {
		next.Items = next.Items[:perPage]
	}
	next.Total++
	if pages := models.TotalPagesFor(next.Total, perPage); pages > next.TotalPages {
		next.TotalPages = pages
	}
	return next
}

func validate(form models.UserForm) error {
	var missing []string
	if strings.TrimSpace(form.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(form.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: required: %s", common.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// IsValidation reports whether err is a form-validation failure, letting the
// CLI surface it inline instead of treating it as a remote error.
func IsValidation(err error) bool {
	return errors.Is(err, common.ErrValidation)
}
