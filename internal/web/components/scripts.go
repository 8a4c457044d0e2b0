package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ScriptRegistry tracks which external scripts a document already carries.
// One registry is created per rendered page and is not shared between requests.
type ScriptRegistry struct {
	ids map[string]struct{}
}

func NewScriptRegistry() *ScriptRegistry {
	return &ScriptRegistry{ids: make(map[string]struct{})}
}

// Once returns build() the first time id is claimed and an empty node afterwards.
func (r *ScriptRegistry) Once(id string, build func() g.Node) g.Node {
	if _, ok := r.ids[id]; ok {
		return g.Group(nil)
	}
	r.ids[id] = struct{}{}
	return build()
}

// Loaded reports whether id has been claimed.
func (r *ScriptRegistry) Loaded(id string) bool {
	_, ok := r.ids[id]
	return ok
}

const (
	ChatWidgetScriptID     = "leadconnector-chatbot"
	chatWidgetLoaderURL    = "https://widgets.leadconnectorhq.com/loader.js"
	chatWidgetResourcesURL = "https://widgets.leadconnectorhq.com/chat-widget/loader.js"
	DefaultChatWidgetID    = "68de330a0160d118b515f4b6"
)

type ChatWidgetConfig struct {
	Enabled  bool
	WidgetID string
}

// ChatWidget mounts the LeadConnector chat loader. Mounting it again on the
// same document renders nothing.
func ChatWidget(scripts *ScriptRegistry, cfg ChatWidgetConfig) g.Node {
	if !cfg.Enabled {
		return g.Group(nil)
	}
	widgetID := cfg.WidgetID
	if widgetID == "" {
		widgetID = DefaultChatWidgetID
	}
	return scripts.Once(ChatWidgetScriptID, func() g.Node {
		return Script(
			ID(ChatWidgetScriptID),
			Src(chatWidgetLoaderURL),
			g.Attr("data-resources-url", chatWidgetResourcesURL),
			g.Attr("data-widget-id", widgetID),
		)
	})
}
