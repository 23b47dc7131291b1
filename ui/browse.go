// Package ui is the interactive feed: a long-lived view that subscribes to
// session transitions and re-evaluates the route guard as they arrive, and
// drops stale load results when the user has already navigated away.
package ui

import (
	"fmt"

	"inkwell-cli/auth"
	"inkwell-cli/content"
	"inkwell-cli/format"
	"inkwell-cli/guard"
	"inkwell-cli/shared"
	"inkwell-cli/term"
	"inkwell-cli/types"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type browseState int

const (
	stateLoading browseState = iota
	stateFeed
	stateDetail
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	sessStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"})
	helpStyle   = lipgloss.NewStyle().Faint(true).Padding(1, 1)
)

type sessionMsg auth.Session

type feedMsg struct {
	gen   int
	posts []*shared.Post
	err   *shared.ApiError
}

type detailMsg struct {
	gen  int
	body string
	err  *shared.ApiError
}

type postItem struct {
	post *shared.Post
}

func (i postItem) Title() string { return i.post.Title }
func (i postItem) Description() string {
	return fmt.Sprintf("By %s · %s", i.post.DisplayAuthor(), format.Time(i.post.CreatedAt))
}
func (i postItem) FilterValue() string { return i.post.Title }

type browseModel struct {
	store  *auth.Store
	client types.ApiClient

	sessionCh <-chan auth.Session
	sess      auth.Session

	posts *content.Collection[*shared.Post, types.PostDraft]
	feed  list.Model
	spin  spinner.Model

	state  browseState
	detail string
	status string

	// load generation; results tagged with an older generation belong to a
	// view the user already left and are dropped
	gen int

	width  int
	height int
}

// RunBrowse starts the interactive feed. Session restoration runs in the
// background so the first paint isn't blocked on the network.
func RunBrowse(store *auth.Store, client types.ApiClient) error {
	sessionCh, cancel := store.Subscribe()
	defer cancel()

	feed := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	feed.SetShowTitle(false)
	feed.SetShowStatusBar(false)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := browseModel{
		store:     store,
		client:    client,
		sessionCh: sessionCh,
		sess:      store.Session(),
		posts:     content.NewPostCollection(client),
		feed:      feed,
		spin:      spin,
		state:     stateLoading,
	}

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		m.restoreSession(),
		m.loadFeed(),
		m.waitForSession(),
	)
}

func (m browseModel) restoreSession() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		store.Restore()
		return nil
	}
}

func (m browseModel) loadFeed() tea.Cmd {
	gen := m.gen
	posts := m.posts
	return func() tea.Msg {
		apiErr := posts.LoadAll()
		return feedMsg{gen: gen, posts: posts.Items(), err: apiErr}
	}
}

func (m browseModel) loadDetail(post *shared.Post) tea.Cmd {
	gen := m.gen
	client := m.client
	user := m.sess.User
	return func() tea.Msg {
		full, apiErr := client.GetPost(post.Id)
		if apiErr != nil {
			return detailMsg{gen: gen, err: apiErr}
		}

		thread := content.NewCommentThread(client, post.Id)
		// a comment failure shouldn't block the post body
		_ = thread.Load()

		return detailMsg{gen: gen, body: renderDetail(full, thread.Comments(), user)}
	}
}

func (m browseModel) waitForSession() tea.Cmd {
	ch := m.sessionCh
	return func() tea.Msg {
		sess, ok := <-ch
		if !ok {
			return nil
		}
		return sessionMsg(sess)
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.feed.SetSize(msg.Width-2, msg.Height-4)
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case sessionMsg:
		m.sess = auth.Session(msg)

		// the guard is re-evaluated on every transition: losing the session
		// while reading a gated view bounces back to the public feed
		if m.state == stateDetail {
			if guard.Decide(m.sess, guard.AuthenticatedAny).Outcome != guard.Allow {
				m.gen++
				m.state = stateFeed
				m.status = "Signed out — sign in to keep reading"
			}
		}
		return m, m.waitForSession()

	case feedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.state = stateFeed
			m.status = "Couldn't load posts: " + msg.err.Msg
			return m, nil
		}

		items := make([]list.Item, len(msg.posts))
		for i, post := range msg.posts {
			items[i] = postItem{post}
		}
		m.feed.SetItems(items)
		m.state = stateFeed
		m.status = ""
		return m, nil

	case detailMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.state = stateFeed
			m.status = "Couldn't load post: " + msg.err.Msg
			return m, nil
		}
		m.state = stateDetail
		m.detail = msg.body
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == stateFeed {
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {

	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.state == stateDetail {
			// invalidate any in-flight detail load for the old view
			m.gen++
			m.state = stateFeed
		}
		return m, nil

	case "r":
		if m.state == stateFeed {
			m.gen++
			m.state = stateLoading
			return m, tea.Batch(m.spin.Tick, m.loadFeed())
		}

	case "enter":
		if m.state != stateFeed {
			break
		}
		item, ok := m.feed.SelectedItem().(postItem)
		if !ok {
			return m, nil
		}

		decision := guard.Decide(m.sess, guard.AuthenticatedAny)
		switch decision.Outcome {
		case guard.Pending:
			m.status = "Restoring session..."
			return m, nil
		case guard.Redirect:
			m.status = "Sign in to read posts: inkwell sign-in"
			return m, nil
		}

		m.gen++
		m.state = stateLoading
		m.status = ""
		return m, tea.Batch(m.spin.Tick, m.loadDetail(item.post))
	}

	if m.state == stateFeed {
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m browseModel) View() string {
	header := headerStyle.Render("Inkwell") + " " + sessStyle.Render(m.sessionLabel())

	var body string
	switch m.state {
	case stateLoading:
		body = "\n  " + m.spin.View() + " Loading...\n"
	case stateDetail:
		body = m.detail + helpStyle.Render("esc: back · q: quit")
	default:
		body = m.feed.View()
		if m.status != "" {
			body += "\n" + statusStyle.Render("  "+m.status)
		}
		body += helpStyle.Render("enter: read · r: reload · q: quit")
	}

	return header + "\n" + body
}

func (m browseModel) sessionLabel() string {
	switch m.sess.Status {
	case auth.StatusAuthenticating:
		return "restoring session..."
	case auth.StatusAuthenticated:
		if m.sess.IsAdmin() {
			return m.sess.User.Username + " (admin)"
		}
		return m.sess.User.Username
	default:
		return "anonymous"
	}
}

func renderDetail(post *shared.Post, comments []*shared.Comment, user *shared.User) string {
	body, err := term.GetMarkdown(post.Content)
	if err != nil {
		body = term.GetPlain(post.Content)
	}

	out := headerStyle.Render(post.Title) + "\n" +
		sessStyle.Render(fmt.Sprintf("By %s · %s", post.DisplayAuthor(), format.Time(post.CreatedAt))) + "\n" +
		body + "\n"

	out += headerStyle.Render(fmt.Sprintf("Comments (%d)", len(comments))) + "\n"
	if len(comments) == 0 {
		out += sessStyle.Render("  No comments yet.") + "\n"
	}

	for _, comment := range comments {
		line := fmt.Sprintf("%s · %s", comment.DisplayAuthor(), format.Time(comment.CreatedAt))
		if content.CanDelete(user, comment) {
			line += " · deletable"
		}
		out += "  " + sessStyle.Render(line) + "\n" + term.GetPlain(comment.Content) + "\n"
	}

	return out
}
