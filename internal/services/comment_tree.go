package services

import (
	"github.com/rafabene/feedbackboard-backend/internal/domain/entities"
)

// CommentNode é um comentário anotado com suas respostas para renderização
// em thread. ReplyCount conta apenas filhos diretos; o total recursivo vem
// de Descendants.
type CommentNode struct {
	*entities.Comment
	Replies    []*CommentNode
	ReplyCount int
}

// Descendants retorna o total de respostas diretas e indiretas do nó
func (n *CommentNode) Descendants() int {
	total := len(n.Replies)
	for _, reply := range n.Replies {
		total += reply.Descendants()
	}
	return total
}

// BuildCommentTree monta a floresta de comentários a partir da lista plana
// de um único feedback, ordenada por criação ascendente.
//
// Duas passadas: primeiro indexa cada comentário como nó (arena id -> nó),
// depois liga cada nó ao pai quando o pai está no índice. Como a entrada
// está em ordem de criação e um pai sempre precede seus filhos, as listas
// de respostas saem naturalmente em ordem ascendente e nenhum ciclo é
// possível. Comentário cujo pai não resolve no índice (outro feedback,
// hard-delete) vira raiz silenciosamente; isso é política de degradação
// para renderização, não erro.
func BuildCommentTree(comments []*entities.Comment) []*CommentNode {
	byID := make(map[string]*CommentNode, len(comments))
	for _, comment := range comments {
		byID[comment.ID] = &CommentNode{
			Comment: comment,
			Replies: []*CommentNode{},
		}
	}

	roots := make([]*CommentNode, 0)
	for _, comment := range comments {
		node := byID[comment.ID]

		if comment.ParentID != nil {
			if parent, ok := byID[*comment.ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
				parent.ReplyCount++
				continue
			}
		}

		roots = append(roots, node)
	}

	return roots
}
