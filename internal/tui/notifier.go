// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultNoticeBuffer = 16

// NoticeLevel is the severity of a [Notice].
type NoticeLevel int

const (
	NoticeWarning NoticeLevel = iota
	NoticeError
)

// Notice is a server-sent message shown in the status line.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Notifier queues server warnings and error entries for the main loop. It
// satisfies the API client's notifier contract and never blocks the
// request that produced the message: notices arriving while the queue is
// full are dropped.
type Notifier struct {
	ch chan Notice
}

// NewNotifier returns a Notifier that buffers up to size notices.
func NewNotifier(size int) *Notifier {
	return &Notifier{ch: make(chan Notice, max(size, 1))}
}

func (n *Notifier) Warning(_ context.Context, message string) {
	n.push(Notice{Level: NoticeWarning, Message: message})
}

func (n *Notifier) Error(_ context.Context, message string) {
	n.push(Notice{Level: NoticeError, Message: message})
}

// Notices returns the receive side of the queue.
func (n *Notifier) Notices() <-chan Notice {
	return n.ch
}

func (n *Notifier) push(notice Notice) {
	select {
	case n.ch <- notice:
	default:
	}
}

// waitForNotice delivers the next notice as a message, or nothing once done
// is closed.
func waitForNotice(notices <-chan Notice, done <-chan struct{}) tea.Cmd {
	if notices == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case n := <-notices:
			return noticeMsg(n)
		case <-done:
			return nil
		}
	}
}
