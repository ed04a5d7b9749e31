package twilio

import "encoding/xml"

// MessagingResponse builds the TwiML document Twilio expects as the reply to
// an inbound SMS webhook. Every Message element is sent back to the sender.
type MessagingResponse struct {
	XMLName  xml.Name `xml:"Response"`
	Messages []string `xml:"Message"`
}

func (r *MessagingResponse) Message(body string) *MessagingResponse {
	r.Messages = append(r.Messages, body)
	return r
}

func (r *MessagingResponse) Render() (string, error) {
	out, err := xml.Marshal(r)
	if err != nil {
		return "", err
	}

	return xml.Header + string(out), nil
}
