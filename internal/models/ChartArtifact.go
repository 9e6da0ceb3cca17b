package models

const ContentTypePNG = "image/png"

type ChartArtifact struct {
	Data        []byte
	ContentType string
}

func (c *ChartArtifact) Size() int {
	return len(c.Data)
}
