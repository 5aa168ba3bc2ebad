package services

import (
	"conduit-api/repositories"
)

// PopularTagLimit bounds the tag ranking; it is not caller-configurable.
const PopularTagLimit = 10

type TagService interface {
	PopularTags() ([]string, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) PopularTags() ([]string, error) {
	tags, err := s.tagRepo.GetPopular(PopularTagLimit)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
