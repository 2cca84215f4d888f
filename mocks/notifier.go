package mocks

type Notifier struct {
	Messages []string
}

func (n *Notifier) Notify(title, message string) {
	n.Messages = append(n.Messages, title+": "+message)
}
