package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
	"github.com/Aayush01055/File-tracking-system/internal/core/ports"
)

// abort reports whether a view should stop after a prompt error. Input
// ending (EOF) is silent; anything else is surfaced to the user.
func (s *Shell) abort(err error) bool {
	if err == nil {
		return false
	}
	if !errors.Is(err, io.EOF) {
		s.notifier.Error(err.Error())
	}
	return true
}

type createFileForm struct {
	Title   string `validate:"required"`
	Status  string `validate:"required"`
	Officer string `validate:"required"`
}

func officerLabels(users []domain.User) []string {
	labels := make([]string, len(users))
	for i, u := range users {
		labels[i] = fmt.Sprintf("%s (%s)", u.Username, u.UserID)
	}
	return labels
}

func (s *Shell) createView(ctx context.Context) {
	sess := s.sessions.Current()
	fmt.Fprintln(s.out, "\n--- Create New File ---")

	gen := s.sessions.Generation()
	officers, err := s.gateway.Users(ctx, sess.UserID, domain.RoleOfficer, domain.RoleAdmin)
	if s.stale(gen) {
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("fetching officers failed")
		s.notifier.Error(humanError(err))
		return
	}
	if len(officers) == 0 {
		s.notifier.Error("No officers available to assign")
		return
	}

	title, err := s.prompt("Title")
	if s.abort(err) {
		return
	}
	statusIdx, err := s.choose("Status", domain.FileStatuses)
	if s.abort(err) {
		return
	}
	officerIdx, err := s.choose("Current officer", officerLabels(officers))
	if s.abort(err) {
		return
	}
	courseCode, err := s.prompt("Course code (optional)")
	if s.abort(err) {
		return
	}
	examSession, err := s.prompt("Exam session (optional)")
	if s.abort(err) {
		return
	}

	form := createFileForm{Title: title}
	if statusIdx >= 0 {
		form.Status = domain.FileStatuses[statusIdx]
	}
	if officerIdx >= 0 {
		form.Officer = officers[officerIdx].UserID
	}
	if err := validateForm(form); err != nil {
		s.notifier.Error(err.Error())
		return
	}

	gen = s.sessions.Generation()
	created, err := s.gateway.CreateFile(ctx, sess.UserID, domain.File{
		Title:          form.Title,
		Status:         form.Status,
		CurrentOfficer: form.Officer,
		CourseCode:     courseCode,
		ExamSession:    examSession,
	})
	if s.stale(gen) {
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("file creation failed")
		s.notifier.Error(humanError(err))
		return
	}
	s.renderFile(created)
	s.notifier.Success("File created successfully")
}

func (s *Shell) updateView(ctx context.Context) {
	sess := s.sessions.Current()
	fmt.Fprintln(s.out, "\n--- Update File ---")

	id, err := s.prompt("File ID")
	if s.abort(err) {
		return
	}
	if id == "" {
		s.notifier.Error("file id is required")
		return
	}

	gen := s.sessions.Generation()
	current, err := s.gateway.File(ctx, sess.UserID, id)
	if s.stale(gen) {
		return
	}
	if err != nil {
		s.notifier.Error(humanError(err))
		return
	}
	s.renderFile(current)

	gen = s.sessions.Generation()
	officers, err := s.gateway.Users(ctx, sess.UserID, domain.RoleOfficer, domain.RoleAdmin)
	if s.stale(gen) {
		return
	}
	if err != nil {
		s.notifier.Error(humanError(err))
		return
	}

	fmt.Fprintln(s.out, "Press enter to keep a current value.")
	title, err := s.prompt("Title [" + current.Title + "]")
	if s.abort(err) {
		return
	}
	statusIdx, err := s.choose("Status [keep "+current.Status+"]", domain.FileStatuses)
	if s.abort(err) {
		return
	}
	officerIdx, err := s.choose("Current officer [keep "+current.CurrentOfficer+"]", officerLabels(officers))
	if s.abort(err) {
		return
	}
	courseCode, err := s.prompt("Course code [" + orDash(current.CourseCode) + "]")
	if s.abort(err) {
		return
	}
	examSession, err := s.prompt("Exam session [" + orDash(current.ExamSession) + "]")
	if s.abort(err) {
		return
	}

	var update ports.FileUpdate
	if title != "" && title != current.Title {
		update.Title = &title
	}
	if statusIdx >= 0 && domain.FileStatuses[statusIdx] != current.Status {
		update.Status = &domain.FileStatuses[statusIdx]
	}
	if officerIdx >= 0 && officers[officerIdx].UserID != current.CurrentOfficer {
		update.CurrentOfficer = &officers[officerIdx].UserID
	}
	if courseCode != "" && courseCode != current.CourseCode {
		update.CourseCode = &courseCode
	}
	if examSession != "" && examSession != current.ExamSession {
		update.ExamSession = &examSession
	}
	if update.Empty() {
		s.notifier.Show("No changes to apply", domain.NotifySuccess)
		return
	}

	gen = s.sessions.Generation()
	updated, err := s.gateway.UpdateFile(ctx, sess.UserID, id, update)
	if s.stale(gen) {
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("file_id", id).Msg("file update failed")
		s.notifier.Error(humanError(err))
		return
	}
	s.renderFile(updated)
	s.notifier.Success("File updated successfully")
}

type registerUserForm struct {
	Username string `validate:"required,min=3"`
	Password string `validate:"required,min=6"`
	Role     string `validate:"required,oneof=admin officer guest"`
}

func (s *Shell) registerView(ctx context.Context) {
	sess := s.sessions.Current()
	fmt.Fprintln(s.out, "\n--- Register User ---")

	username, err := s.prompt("Username")
	if s.abort(err) {
		return
	}
	password, err := s.promptSecret("Password")
	if s.abort(err) {
		return
	}
	roles := []string{domain.RoleAdmin, domain.RoleOfficer, domain.RoleGuest}
	roleIdx, err := s.choose("Role", roles)
	if s.abort(err) {
		return
	}

	form := registerUserForm{Username: username, Password: password}
	if roleIdx >= 0 {
		form.Role = roles[roleIdx]
	}
	if err := validateForm(form); err != nil {
		s.notifier.Error(err.Error())
		return
	}

	gen := s.sessions.Generation()
	user, err := s.gateway.RegisterUser(ctx, sess.UserID, form.Username, form.Password, form.Role)
	if s.stale(gen) {
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("username", form.Username).Msg("user registration failed")
		s.notifier.Error(humanError(err))
		return
	}
	s.notifier.Success("User " + user.Username + " registered successfully")
}

func (s *Shell) trackView(ctx context.Context) {
	sess := s.sessions.Current()
	fmt.Fprintln(s.out, "\n--- Track File ---")

	id, err := s.prompt("File ID")
	if s.abort(err) {
		return
	}
	if id == "" {
		s.notifier.Error("file id is required")
		return
	}

	gen := s.sessions.Generation()
	file, err := s.gateway.File(ctx, sess.UserID, id)
	if s.stale(gen) {
		return
	}
	if err != nil {
		s.notifier.Error(humanError(err))
		return
	}
	s.renderFile(file)
	s.notifier.Success("File loaded")
}

func (s *Shell) searchView(ctx context.Context) {
	sess := s.sessions.Current()
	fmt.Fprintln(s.out, "\n--- Search Files ---")

	query, err := s.prompt("Query")
	if s.abort(err) {
		return
	}
	if query == "" {
		s.notifier.Error("search query cannot be empty")
		return
	}

	gen := s.sessions.Generation()
	files, err := s.gateway.SearchFiles(ctx, sess.UserID, query)
	if s.stale(gen) {
		return
	}
	if err != nil {
		s.notifier.Error(humanError(err))
		return
	}
	if len(files) > 0 {
		s.renderFileTable(files)
	}
	s.notifier.Success(fmt.Sprintf("%d file(s) found", len(files)))
}

func (s *Shell) auditView(ctx context.Context) {
	sess := s.sessions.Current()
	fmt.Fprintln(s.out, "\n--- Audit Logs ---")

	id, err := s.prompt("File ID")
	if s.abort(err) {
		return
	}
	if id == "" {
		s.notifier.Error("file id is required")
		return
	}

	gen := s.sessions.Generation()
	logs, err := s.gateway.AuditTrail(ctx, sess.UserID, id)
	if s.stale(gen) {
		return
	}
	if err != nil {
		s.notifier.Error(humanError(err))
		return
	}
	if len(logs) > 0 {
		s.renderAuditTable(logs)
	}
	s.notifier.Success(fmt.Sprintf("%d audit entries found", len(logs)))
}
