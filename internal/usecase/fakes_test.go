package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/repository"
	ws "github.com/tuncayozel/i-inolsun-sub000/internal/infrastructure/websocket"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
)

// In-memory repository fakes. They mirror the Firestore implementations'
// observable behavior: generated IDs, stamped timestamps, NOT_FOUND app
// errors, and whole-document overwrites on Update.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	for key, value := range fields {
		switch key {
		case "name":
			user.Name = value.(string)
		case "phone":
			user.Phone = value.(string)
		case "location":
			user.Location = value.(string)
		case "skills":
			user.Skills = value.([]string)
		case "rating":
			user.Rating = value.(float64)
		case "ratingCount":
			user.RatingCount = value.(int)
		case "completedJobs":
			user.CompletedJobs = value.(int)
		case "totalEarnings":
			user.TotalEarnings = value.(float64)
		}
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*entity.Job
	seq  int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*entity.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, job *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	job.ID = fmt.Sprintf("job-%d", r.seq)
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, errors.NotFound("Job", nil)
	}
	cp := *job
	return &cp, nil
}

func (r *fakeJobRepo) list(filter func(*entity.Job) bool, limit, offset int) ([]*entity.Job, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Job
	for _, job := range r.jobs {
		if filter(job) {
			cp := *job
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if offset > len(matched) {
		return []*entity.Job{}, total, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

func (r *fakeJobRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.Job, int64, error) {
	return r.list(func(j *entity.Job) bool { return j.Status == entity.JobStatusActive }, limit, offset)
}

func (r *fakeJobRepo) ListByCategory(ctx context.Context, category string, limit, offset int) ([]*entity.Job, int64, error) {
	return r.list(func(j *entity.Job) bool {
		return j.Status == entity.JobStatusActive && j.Category == category
	}, limit, offset)
}

func (r *fakeJobRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Job, int64, error) {
	return r.list(func(j *entity.Job) bool { return j.OwnerID == ownerID }, limit, offset)
}

func (r *fakeJobRepo) ListByWorker(ctx context.Context, workerID string, limit, offset int) ([]*entity.Job, int64, error) {
	return r.list(func(j *entity.Job) bool { return j.WorkerID == workerID }, limit, offset)
}

func (r *fakeJobRepo) Update(ctx context.Context, job *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return errors.NotFound("Job", nil)
	}
	job.UpdatedAt = time.Now()
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return errors.NotFound("Job", nil)
	}
	delete(r.jobs, id)
	return nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*entity.JobApplication
	seq          int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*entity.JobApplication)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *entity.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	application.ID = fmt.Sprintf("app-%d", r.seq)
	now := time.Now()
	application.AppliedAt = now
	application.UpdatedAt = now
	cp := *application
	r.applications[application.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id string) (*entity.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	application, ok := r.applications[id]
	if !ok {
		return nil, errors.NotFound("Application", nil)
	}
	cp := *application
	return &cp, nil
}

func (r *fakeApplicationRepo) list(filter func(*entity.JobApplication) bool, limit, offset int) ([]*entity.JobApplication, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.JobApplication
	for _, application := range r.applications {
		if filter(application) {
			cp := *application
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].AppliedAt.Before(matched[j].AppliedAt)
	})
	total := int64(len(matched))
	if offset > len(matched) {
		return []*entity.JobApplication{}, total, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID string, limit, offset int) ([]*entity.JobApplication, int64, error) {
	return r.list(func(a *entity.JobApplication) bool { return a.JobID == jobID }, limit, offset)
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID string, limit, offset int) ([]*entity.JobApplication, int64, error) {
	return r.list(func(a *entity.JobApplication) bool { return a.ApplicantID == applicantID }, limit, offset)
}

func (r *fakeApplicationRepo) ListPendingByJob(ctx context.Context, jobID string) ([]*entity.JobApplication, error) {
	applications, _, err := r.list(func(a *entity.JobApplication) bool {
		return a.JobID == jobID && a.Status == entity.ApplicationStatusPending
	}, 0, 0)
	return applications, err
}

func (r *fakeApplicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*entity.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, application := range r.applications {
		if application.JobID == jobID && application.ApplicantID == applicantID {
			cp := *application
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Application", nil)
}

func (r *fakeApplicationRepo) Update(ctx context.Context, application *entity.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.applications[application.ID]; !ok {
		return errors.NotFound("Application", nil)
	}
	application.UpdatedAt = time.Now()
	cp := *application
	r.applications[application.ID] = &cp
	return nil
}

type fakeBalanceRepo struct {
	mu       sync.Mutex
	balances map[string]*entity.UserBalance
	txns     []*entity.Transaction
	seq      int
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]*entity.UserBalance)}
}

func (r *fakeBalanceRepo) newTxn(userID, txnType string, amount float64, description, reference string) *entity.Transaction {
	r.seq++
	now := time.Now()
	txn := &entity.Transaction{
		ID:          fmt.Sprintf("txn-%d", r.seq),
		UserID:      userID,
		Type:        txnType,
		Amount:      amount,
		Status:      entity.TransactionStatusCompleted,
		Description: description,
		Reference:   reference,
		ProcessedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.txns = append(r.txns, txn)
	return txn
}

func (r *fakeBalanceRepo) CreateBalance(ctx context.Context, balance *entity.UserBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *balance
	r.balances[balance.UserID] = &cp
	return nil
}

func (r *fakeBalanceRepo) GetByUserID(ctx context.Context, userID string) (*entity.UserBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	balance, ok := r.balances[userID]
	if !ok {
		return nil, errors.NotFound("Balance", nil)
	}
	cp := *balance
	return &cp, nil
}

func (r *fakeBalanceRepo) Deposit(ctx context.Context, userID string, amount float64, description string) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	balance, ok := r.balances[userID]
	if !ok {
		return nil, errors.NotFound("Balance", nil)
	}
	balance.Balance += amount
	return r.newTxn(userID, entity.TransactionTypeDeposit, amount, description, ""), nil
}

func (r *fakeBalanceRepo) Withdraw(ctx context.Context, userID string, amount, fee float64, description string) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	balance, ok := r.balances[userID]
	if !ok {
		return nil, errors.NotFound("Balance", nil)
	}
	if balance.Balance < amount+fee {
		return nil, errors.BadRequest("Insufficient balance", nil)
	}
	balance.Balance -= amount + fee
	balance.TotalWithdrawn += amount
	txn := r.newTxn(userID, entity.TransactionTypeWithdrawal, -amount, description, "")
	if fee > 0 {
		r.newTxn(userID, entity.TransactionTypeCommission, -fee, "Withdrawal fee", "")
	}
	return txn, nil
}

func (r *fakeBalanceRepo) TransferJobPayment(ctx context.Context, input repository.JobPaymentInput) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.balances[input.OwnerID]
	if !ok {
		return nil, errors.NotFound("Balance", nil)
	}
	worker, ok := r.balances[input.WorkerID]
	if !ok {
		return nil, errors.NotFound("Balance", nil)
	}
	if owner.Balance < input.Amount {
		return nil, errors.BadRequest("Insufficient balance", nil)
	}

	net := input.Amount - input.Commission
	owner.Balance -= input.Amount
	worker.Balance += net
	worker.TotalEarned += net

	txns := []*entity.Transaction{
		r.newTxn(input.OwnerID, entity.TransactionTypeJobPayment, -input.Amount, "Payment for "+input.JobTitle, input.JobID),
		r.newTxn(input.WorkerID, entity.TransactionTypeJobPayment, input.Amount, "Earnings for "+input.JobTitle, input.JobID),
	}
	if input.Commission > 0 {
		txns = append(txns, r.newTxn(input.WorkerID, entity.TransactionTypeCommission, -input.Commission, "Commission for "+input.JobTitle, input.JobID))
	}
	return txns, nil
}

type fakeTransactionRepo struct {
	balanceRepo *fakeBalanceRepo
}

func (r *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.balanceRepo.mu.Lock()
	defer r.balanceRepo.mu.Unlock()
	r.balanceRepo.txns = append(r.balanceRepo.txns, transaction)
	return nil
}

func (r *fakeTransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	r.balanceRepo.mu.Lock()
	defer r.balanceRepo.mu.Unlock()
	for _, txn := range r.balanceRepo.txns {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, errors.NotFound("Transaction", nil)
}

func (r *fakeTransactionRepo) ListByUser(ctx context.Context, userID, txnType string, limit, offset int) ([]*entity.Transaction, int64, error) {
	r.balanceRepo.mu.Lock()
	defer r.balanceRepo.mu.Unlock()
	var matched []*entity.Transaction
	for _, txn := range r.balanceRepo.txns {
		if txn.UserID != userID {
			continue
		}
		if txnType != "" && txn.Type != txnType {
			continue
		}
		matched = append(matched, txn)
	}
	total := int64(len(matched))
	if offset > len(matched) {
		return []*entity.Transaction{}, total, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
	seq           int
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	notification.ID = fmt.Sprintf("notif-%d", r.seq)
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Notification
	for _, notification := range r.notifications {
		if notification.UserID == userID {
			matched = append(matched, notification)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, notification := range r.notifications {
		if notification.ID == id {
			if notification.UserID != userID {
				return errors.Forbidden("Notification belongs to another user", nil)
			}
			notification.Read = true
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, notification := range r.notifications {
		if notification.UserID == userID {
			notification.Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.Read {
			count++
		}
	}
	return count, nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[string]*entity.UserSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[string]*entity.UserSettings)}
}

func (r *fakeSettingsRepo) GetByUserID(ctx context.Context, userID string) (*entity.UserSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	settings, ok := r.settings[userID]
	if !ok {
		return nil, errors.NotFound("Settings", nil)
	}
	cp := *settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Set(ctx context.Context, settings *entity.UserSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *settings
	r.settings[settings.UserID] = &cp
	return nil
}

type fakeChatRepo struct {
	mu       sync.Mutex
	rooms    map[string]*entity.ChatRoom
	messages []*entity.Message
	roomSeq  int
	msgSeq   int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{rooms: make(map[string]*entity.ChatRoom)}
}

func (r *fakeChatRepo) CreateRoom(ctx context.Context, room *entity.ChatRoom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roomSeq++
	room.ID = fmt.Sprintf("room-%d", r.roomSeq)
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeChatRepo) GetRoomByID(ctx context.Context, id string) (*entity.ChatRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, errors.NotFound("Chat room", nil)
	}
	cp := *room
	return &cp, nil
}

func (r *fakeChatRepo) GetRoomByParticipants(ctx context.Context, userA, userB, jobID string) (*entity.ChatRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, room := range r.rooms {
		if containsAll(room.Participants, userA, userB) && room.JobID == jobID {
			cp := *room
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Chat room", nil)
}

func (r *fakeChatRepo) ListRoomsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.ChatRoom, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.ChatRoom
	for _, room := range r.rooms {
		if containsAll(room.Participants, userID) {
			cp := *room
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].LastMessageAt.After(matched[j].LastMessageAt)
	})
	return matched, int64(len(matched)), nil
}

func (r *fakeChatRepo) UpdateRoom(ctx context.Context, room *entity.ChatRoom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[room.ID]; !ok {
		return errors.NotFound("Chat room", nil)
	}
	room.UpdatedAt = time.Now()
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeChatRepo) CreateMessage(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgSeq++
	message.ID = fmt.Sprintf("msg-%d", r.msgSeq)
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	cp := *message
	r.messages = append(r.messages, &cp)
	return nil
}

func (r *fakeChatRepo) ListMessagesByRoom(ctx context.Context, roomID string, limit, offset int) ([]*entity.Message, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Message
	for _, message := range r.messages {
		if message.RoomID == roomID {
			cp := *message
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if offset > len(matched) {
		return []*entity.Message{}, total, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

func (r *fakeChatRepo) MarkRoomMessagesRead(ctx context.Context, roomID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, message := range r.messages {
		if message.RoomID == roomID && message.ReceiverID == userID {
			message.Read = true
		}
	}
	return nil
}

func (r *fakeChatRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, message := range r.messages {
		if message.ReceiverID == userID && !message.Read {
			count++
		}
	}
	return count, nil
}

func containsAll(list []string, values ...string) bool {
	for _, value := range values {
		found := false
		for _, item := range list {
			if item == value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// fakePusher records pushed events and lets tests control who is online.
type fakePusher struct {
	mu     sync.Mutex
	online map[string]bool
	events map[string][]ws.Event
}

func newFakePusher() *fakePusher {
	return &fakePusher{
		online: make(map[string]bool),
		events: make(map[string][]ws.Event),
	}
}

func (p *fakePusher) SendEventToUser(userID string, event ws.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[userID] = append(p.events[userID], event)
}

func (p *fakePusher) IsOnline(userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.online[userID]
}

func (p *fakePusher) eventsFor(userID string) []ws.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[userID]
}

// fakeFirebaseAuth issues deterministic tokens keyed by email.
type fakeFirebaseAuth struct {
	mu        sync.Mutex
	passwords map[string]string // email -> password
	uids      map[string]string // email -> uid
	seq       int
}

func newFakeFirebaseAuth() *fakeFirebaseAuth {
	return &fakeFirebaseAuth{
		passwords: make(map[string]string),
		uids:      make(map[string]string),
	}
}

func (f *fakeFirebaseAuth) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.uids[email]; ok {
		return "", errors.BadRequest("Email already in use", nil)
	}
	f.seq++
	uid := fmt.Sprintf("uid-%d", f.seq)
	f.uids[email] = uid
	f.passwords[email] = password
	return uid, nil
}

func (f *fakeFirebaseAuth) VerifyToken(ctx context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, uid := range f.uids {
		if token == "token-"+email {
			return uid, nil
		}
	}
	return "", errors.Unauthorized("Invalid token", nil)
}

func (f *fakeFirebaseAuth) SignInWithEmailPassword(email, password string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.passwords[email]
	if !ok || stored != password {
		return "", "", errors.Unauthorized("Invalid credentials", nil)
	}
	return "token-" + email, "refresh-" + email, nil
}

func (f *fakeFirebaseAuth) RefreshIDToken(refreshToken string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email := range f.uids {
		if refreshToken == "refresh-"+email {
			return "token-" + email, "refresh-" + email, nil
		}
	}
	return "", "", errors.Unauthorized("Invalid refresh token", nil)
}

func (f *fakeFirebaseAuth) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, storedUID := range f.uids {
		if storedUID == uid {
			f.passwords[email] = newPassword
			return nil
		}
	}
	return errors.NotFound("User", nil)
}

func (f *fakeFirebaseAuth) DeleteUser(ctx context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, storedUID := range f.uids {
		if storedUID == uid {
			delete(f.uids, email)
			delete(f.passwords, email)
			return nil
		}
	}
	return errors.NotFound("User", nil)
}
