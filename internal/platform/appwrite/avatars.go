package appwrite

import "net/url"

func (c *Client) InitialsURL(name string) *url.URL {
	u := c.url("avatars", "initials")
	values := u.Query()
	values.Set("name", name)
	values.Set("project", c.project)
	u.RawQuery = values.Encode()
	return u
}
