// Package changelog loads changelogs into ordered changesets of changes.
//
// Three formats are supported, chosen by file extension:
//
//	.xml        <databaseChangeLog><changeSet id=".." author=".."><revokeObjectPermission .../></changeSet></databaseChangeLog>
//	.yaml/.yml  databaseChangeLog: [{changeSet: {id: .., author: .., changes: [{revokeObjectPermission: {..}}]}}]
//	.sql        --liquibase formatted sql / --changeset author:id
//
// In formatted SQL changelogs, statements of the form
//
//	REVOKE priv [,...] ON [schema.]object FROM grantee [,...]
//
// become revokeObjectPermission changes. Every other statement is kept as a
// sql change.
package changelog
